package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/nigel2421/wemisireact/controllers/product"
	"github.com/nigel2421/wemisireact/middleware"
)

// SetupAdminRoutes registers every mutating endpoint behind the admin-session
// check.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("")
	admin.Use(middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		admin.PUT("/products", productcontroller.ReplaceProducts(db))
		admin.POST("/products", productcontroller.CreateProduct(db))
		admin.PUT("/products/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		admin.GET("/products/export", productcontroller.ExportProductsToExcel(db))
		admin.POST("/products/import", productcontroller.ImportProductsFromExcel(db))

		// ─────────── Category Management ───────────
		admin.PUT("/categories", productcontroller.ReplaceCategories(db))
		admin.PUT("/categories/rename", productcontroller.RenameCategory(db))
		admin.DELETE("/categories/:name", productcontroller.DeleteCategory(db))
	}
}
