package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/store"
)

// AddReview appends a review to a product. Public, no session required;
// reviews are append-only and the server stamps id and date when absent.
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review payload"})
			return
		}
		saved, err := store.AppendReview(db, productID, review)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, store.ErrInvalidReview):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			}
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}
