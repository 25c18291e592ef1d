package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
)

// NewProductID mints an opaque, timestamp-derived product id for records the
// client sent without one.
func NewProductID() string {
	return fmt.Sprintf("prod-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// ListProducts returns every product, hidden ones included. List-valued
// columns come back as structured slices and booleans as real booleans, no
// matter how the storage engine represents them.
func ListProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// UpsertProducts implements the replace-all contract: every element updates
// the record with the same id, or is inserted when no such record exists.
// Records absent from the input are left untouched; deletion is a separate,
// explicit operation.
func UpsertProducts(db *gorm.DB, products []models.Product) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range products {
			p := products[i]
			if p.Price < 0 {
				return fmt.Errorf("%w: %q", ErrInvalidPrice, p.Name)
			}
			if p.ID == "" {
				p.ID = NewProductID()
			}
			var existing models.Product
			err := tx.First(&existing, "id = ?", p.ID).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&p).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				// Full replace of the matching record, not a merge.
				if err := tx.Save(&p).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// CreateProduct inserts a single product, assigning an id when absent. The
// category must name an existing Category (see DESIGN.md on this decision).
func CreateProduct(db *gorm.DB, p models.Product) (models.Product, error) {
	if p.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: %q", ErrInvalidPrice, p.Name)
	}
	if err := categoryMustExist(db, p.Category); err != nil {
		return models.Product{}, err
	}
	if p.ID == "" {
		p.ID = NewProductID()
	}
	if p.ImageURLs == nil {
		p.ImageURLs = models.StringList{}
	}
	if p.Reviews == nil {
		p.Reviews = models.ReviewList{}
	}
	if err := db.Create(&p).Error; err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// UpdateProduct overwrites all fields of the product with the given id.
func UpdateProduct(db *gorm.DB, id string, p models.Product) (models.Product, error) {
	if p.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: %q", ErrInvalidPrice, p.Name)
	}
	if err := categoryMustExist(db, p.Category); err != nil {
		return models.Product{}, err
	}
	var existing models.Product
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return models.Product{}, err
	}
	p.ID = id
	if err := db.Save(&p).Error; err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// DeleteProduct hard-deletes by id.
func DeleteProduct(db *gorm.DB, id string) error {
	result := db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return nil
}

// AppendReview appends a review to the product's list. Reviews are append-only
// from the public side; there is no edit or delete path.
func AppendReview(db *gorm.DB, productID string, review models.Review) (models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return models.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidReview)
	}
	if strings.TrimSpace(review.UserName) == "" || strings.TrimSpace(review.Comment) == "" {
		return models.Review{}, fmt.Errorf("%w: name and comment are required", ErrInvalidReview)
	}
	if review.ID == "" {
		review.ID = "r-" + uuid.NewString()[:8]
	}
	if review.Date == "" {
		review.Date = time.Now().Format("2006-01-02")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
			}
			return err
		}
		product.Reviews = append(product.Reviews, review)
		return tx.Save(&product).Error
	})
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func categoryMustExist(db *gorm.DB, name string) error {
	if name == "" {
		return fmt.Errorf("%w: (empty)", ErrUnknownCategory)
	}
	categories, err := ListCategories(db)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownCategory, name)
}
