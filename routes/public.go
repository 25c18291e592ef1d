package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	blogcontroller "github.com/nigel2421/wemisireact/controllers/blog"
	productcontroller "github.com/nigel2421/wemisireact/controllers/product"
)

// SetupPublicRoutes registers the unauthenticated catalog surface.
func SetupPublicRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/products", productcontroller.GetProducts(db))
	api.GET("/categories", productcontroller.GetCategories(db))

	// Reviews are append-only and open to visitors.
	api.POST("/products/:id/reviews", productcontroller.AddReview(db))

	api.GET("/blog", blogcontroller.GetPosts())
	api.GET("/blog/:id", blogcontroller.GetPost())
}
