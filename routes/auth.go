package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authcontroller "github.com/nigel2421/wemisireact/controllers/auth"
	"github.com/nigel2421/wemisireact/session"
)

// SetupAuthRoutes registers login, logout and session status.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, sessions *session.Manager) {
	api.POST("/auth/login", authcontroller.Login(db, sessions))
	// Older clients still post to /api/login.
	api.POST("/login", authcontroller.Login(db, sessions))

	api.POST("/logout", authcontroller.Logout(sessions))
	api.GET("/auth/status", authcontroller.Status())
}
