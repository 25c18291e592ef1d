// Package sessionstate exposes the session-scoped cart and wishlist scratch
// space. The session is the one home for visitor cart state; there is no
// device-local mirror.
package sessionstate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/session"
)

// GetCart returns the session's cart, an empty array for a fresh session.
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Current(c)
		if sess == nil || sess.Cart == nil {
			c.JSON(http.StatusOK, []models.Product{})
			return
		}
		c.JSON(http.StatusOK, sess.Cart)
	}
}

// SetCart replaces the session's cart wholesale.
func SetCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Cart []models.Product `json:"cart"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Cart == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart"})
			return
		}
		sess := session.Current(c)
		sess.Cart = models.CartList(body.Cart)
		if err := sessions.Save(c, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
}

// GetWishlist returns the session's wishlist product ids.
func GetWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Current(c)
		if sess == nil || sess.Wishlist == nil {
			c.JSON(http.StatusOK, []string{})
			return
		}
		c.JSON(http.StatusOK, sess.Wishlist)
	}
}

// SetWishlist replaces the session's wishlist wholesale.
func SetWishlist(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Wishlist []string `json:"wishlist"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Wishlist == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist"})
			return
		}
		sess := session.Current(c)
		sess.Wishlist = models.StringList(body.Wishlist)
		if err := sessions.Save(c, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
}
