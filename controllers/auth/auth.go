package authcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/session"
)

// dummyHash keeps the bcrypt comparison on the unknown-username path, so a
// missing user costs the same time as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("wemisi-dummy-credential"), bcrypt.DefaultCost)

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates credentials and promotes the session. On success the
// session is regenerated (new id) before any privileged state is written; on
// failure nothing about the existing session changes. The error message never
// reveals which of the two fields was wrong.
func Login(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing credentials"})
			return
		}

		var user models.User
		err := db.First(&user, "username = ?", input.Username).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
				return
			}
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		fresh, err := sessions.Regenerate(c, session.Current(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session error"})
			return
		}
		fresh.IsAdmin = true
		fresh.Username = user.Username
		fresh.Cart = models.CartList{}
		fresh.Wishlist = models.StringList{}
		if err := sessions.Save(c, fresh); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "success"})
	}
}

// Logout destroys the session and clears the cookie. Calling it without a
// live session is fine.
func Logout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Destroy(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not log out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// Status reports whether the current session is privileged. Pure read.
func Status() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Current(c)
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": sess != nil && sess.IsAdmin})
	}
}
