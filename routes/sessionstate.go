package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nigel2421/wemisireact/controllers/sessionstate"
	"github.com/nigel2421/wemisireact/session"
)

// SetupSessionRoutes registers the session-scoped cart and wishlist
// endpoints. They need a resolved session but no admin flag.
func SetupSessionRoutes(api *gin.RouterGroup, sessions *session.Manager) {
	api.GET("/session/cart", sessionstate.GetCart())
	api.POST("/session/cart", sessionstate.SetCart(sessions))
	api.GET("/session/wishlist", sessionstate.GetWishlist())
	api.POST("/session/wishlist", sessionstate.SetWishlist(sessions))
}
