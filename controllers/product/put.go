package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/store"
)

// ReplaceProducts is the replace-all endpoint: every element of the body
// updates its record by id or is inserted. Records missing from the body are
// never implicitly deleted.
func ReplaceProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := c.ShouldBindJSON(&products); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Expected array"})
			return
		}
		if err := store.UpsertProducts(db, products); err != nil {
			if errors.Is(err, store.ErrInvalidPrice) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	}
}
