package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/store"
)

// GetCategories returns all category names as a flat array of strings.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := store.ListCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, names)
	}
}

// ReplaceCategories reconciles the stored category set to match the body.
// Removing a category still referenced by a product is rejected with 409 and
// leaves everything unchanged.
func ReplaceCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var names []string
		if err := c.ShouldBindJSON(&names); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Expected array"})
			return
		}
		if err := store.ReplaceCategories(db, names); err != nil {
			writeCategoryError(c, err, "Failed to save categories")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	}
}

type renameInput struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

// RenameCategory renames a category and cascades into every product tagged
// with the old name, atomically from the caller's point of view.
func RenameCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input renameInput
		if err := c.ShouldBindJSON(&input); err != nil || input.OldName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "oldName and newName are required"})
			return
		}
		if err := store.RenameCategory(db, input.OldName, input.NewName); err != nil {
			writeCategoryError(c, err, "Failed to rename category")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	}
}

// DeleteCategory removes a single category by name, rejected while any
// product still references it.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if err := store.DeleteCategory(db, name); err != nil {
			writeCategoryError(c, err, "Failed to delete category")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

func writeCategoryError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateCategory), errors.Is(err, store.ErrEmptyCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
