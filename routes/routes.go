package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/session"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// auth, session-state, and admin route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Manager) {
	api := r.Group("/api")
	api.Use(sessions.Middleware())

	SetupPublicRoutes(api, db)
	SetupAuthRoutes(api, db, sessions)
	SetupSessionRoutes(api, sessions)
	SetupAdminRoutes(api, db)
}
