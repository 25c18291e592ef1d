package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
)

// Typed failures so handlers can map invariant violations to the right status
// code instead of a blanket 500.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidPrice      = errors.New("price must be non-negative")
	ErrUnknownCategory   = errors.New("unknown product category")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryInUse     = errors.New("category is in use by at least one product")
	ErrDuplicateCategory = errors.New("duplicate category name")
	ErrEmptyCategory     = errors.New("category name cannot be empty")
	ErrInvalidReview     = errors.New("invalid review")
)

// Migrate creates the schema for every collection, sessions included.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Session{},
	)
}
