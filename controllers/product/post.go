package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/store"
)

// CreateProduct inserts a single product. The server assigns the id when the
// client sent none, and the category must name an existing category.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Product
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
			return
		}
		if input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		created, err := store.CreateProduct(db, input)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrInvalidPrice), errors.Is(err, store.ErrUnknownCategory):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			}
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
