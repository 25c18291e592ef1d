package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
)

// ListCategories returns all category names in insertion order.
func ListCategories(db *gorm.DB) ([]string, error) {
	var categories []models.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

// ReplaceCategories reconciles the stored set to exactly match names, in
// order. Unlike the original backend it refuses to drop a category that is
// still referenced by a product, so the deletion invariant holds even against
// a stale client.
func ReplaceCategories(db *gorm.DB, names []string) error {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return ErrEmptyCategory
		}
		for _, seen := range cleaned {
			if strings.EqualFold(seen, n) {
				return fmt.Errorf("%w: %s", ErrDuplicateCategory, n)
			}
		}
		cleaned = append(cleaned, n)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		current, err := ListCategories(tx)
		if err != nil {
			return err
		}
		for _, old := range current {
			if containsFold(cleaned, old) {
				continue
			}
			if err := mustBeUnreferenced(tx, old); err != nil {
				return err
			}
		}
		if err := tx.Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
			return err
		}
		for _, n := range cleaned {
			if err := tx.Create(&models.Category{Name: n}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RenameCategory renames old to new and cascades the change into every
// product tagged with the old name, as one transaction: no caller can observe
// a product still carrying the old name after the rename returns.
func RenameCategory(db *gorm.DB, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyCategory
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "name = ?", oldName).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrCategoryNotFound, oldName)
			}
			return err
		}

		// Conflict check is case-insensitive; renaming only the casing of the
		// same category is allowed.
		var all []models.Category
		if err := tx.Find(&all).Error; err != nil {
			return err
		}
		for _, c := range all {
			if c.ID != category.ID && strings.EqualFold(c.Name, newName) {
				return fmt.Errorf("%w: %s", ErrDuplicateCategory, newName)
			}
		}

		category.Name = newName
		if err := tx.Save(&category).Error; err != nil {
			return err
		}
		return tx.Model(&models.Product{}).
			Where("category = ?", oldName).
			Update("category", newName).Error
	})
}

// DeleteCategory removes a category, rejected while any product references it.
func DeleteCategory(db *gorm.DB, name string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "name = ?", name).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
			}
			return err
		}
		if err := mustBeUnreferenced(tx, name); err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

func mustBeUnreferenced(tx *gorm.DB, name string) error {
	var count int64
	if err := tx.Model(&models.Product{}).Where("category = ?", name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrCategoryInUse, name)
	}
	return nil
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
