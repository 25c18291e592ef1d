package store_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, names ...string) {
	t.Helper()
	require.NoError(t, store.ReplaceCategories(db, names))
}

func TestProductRoundTrip(t *testing.T) {
	db := newTestDB(t)

	p := models.Product{
		ID:           "p1",
		Name:         "Carrara Marble Tile",
		Description:  "Classic Italian polished marble.",
		Category:     "Marble",
		Price:        1170,
		ImageURLs:    models.StringList{"https://example.com/a.jpg", "https://example.com/b.jpg"},
		IsNewArrival: true,
		IsInStock:    true,
		IsVisible:    false,
		Reviews: models.ReviewList{
			{ID: "r1", UserName: "Alice M.", Rating: 5, Comment: "Stunning.", Date: "2023-10-05"},
		},
	}
	require.NoError(t, store.UpsertProducts(db, []models.Product{p}))

	products, err := store.ListProducts(db)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p, products[0])
}

func TestUpsertProductsInsertsAndUpdates(t *testing.T) {
	db := newTestDB(t)

	original := models.Product{ID: "p1", Name: "Pavers", Category: "Stone", Price: 620, IsInStock: true, IsVisible: true,
		ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	require.NoError(t, store.UpsertProducts(db, []models.Product{original}))

	// Full replace of the matching record, plus an insert; p1 is absent from
	// neither list so nothing is deleted.
	updated := original
	updated.Price = 700
	updated.IsInStock = false
	extra := models.Product{ID: "p2", Name: "Slab", Category: "Marble", Price: 12415, IsVisible: true,
		ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	require.NoError(t, store.UpsertProducts(db, []models.Product{updated, extra}))

	products, err := store.ListProducts(db)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, updated, products[0])
	assert.Equal(t, extra, products[1])
}

func TestUpsertProductsDoesNotDeleteByAbsence(t *testing.T) {
	db := newTestDB(t)

	a := models.Product{ID: "a", Name: "A", Price: 1, IsVisible: true, ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	b := models.Product{ID: "b", Name: "B", Price: 2, IsVisible: true, ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	require.NoError(t, store.UpsertProducts(db, []models.Product{a, b}))

	require.NoError(t, store.UpsertProducts(db, []models.Product{a}))

	products, err := store.ListProducts(db)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestUpsertProductsAssignsID(t *testing.T) {
	db := newTestDB(t)

	p := models.Product{Name: "No ID Yet", Price: 10, IsVisible: true, ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	require.NoError(t, store.UpsertProducts(db, []models.Product{p}))

	products, err := store.ListProducts(db)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.NotEmpty(t, products[0].ID)
	assert.Contains(t, products[0].ID, "prod-")
}

func TestUpsertProductsRejectsNegativePrice(t *testing.T) {
	db := newTestDB(t)

	p := models.Product{ID: "p1", Name: "Bad", Price: -5}
	err := store.UpsertProducts(db, []models.Product{p})
	require.ErrorIs(t, err, store.ErrInvalidPrice)

	products, listErr := store.ListProducts(db)
	require.NoError(t, listErr)
	assert.Empty(t, products)
}

func TestCreateProductValidatesCategory(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Tiles")

	_, err := store.CreateProduct(db, models.Product{Name: "X", Category: "Marble", Price: 1})
	require.ErrorIs(t, err, store.ErrUnknownCategory)

	created, err := store.CreateProduct(db, models.Product{Name: "X", Category: "Tiles", Price: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestUpdateProductUnknownID(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Tiles")

	_, err := store.UpdateProduct(db, "missing", models.Product{Name: "X", Category: "Tiles", Price: 1})
	require.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)

	p := models.Product{ID: "p1", Name: "A", Price: 1, IsVisible: true, ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	require.NoError(t, store.UpsertProducts(db, []models.Product{p}))

	require.NoError(t, store.DeleteProduct(db, "p1"))
	require.ErrorIs(t, store.DeleteProduct(db, "p1"), store.ErrProductNotFound)
}

func TestAppendReviewStampsAndAppends(t *testing.T) {
	db := newTestDB(t)

	p := models.Product{ID: "p1", Name: "A", Price: 1, IsVisible: true, ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	require.NoError(t, store.UpsertProducts(db, []models.Product{p}))

	saved, err := store.AppendReview(db, "p1", models.Review{UserName: "Mike R.", Rating: 5, Comment: "Great."})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotEmpty(t, saved.Date)

	products, err := store.ListProducts(db)
	require.NoError(t, err)
	require.Len(t, products[0].Reviews, 1)
	assert.Equal(t, saved, products[0].Reviews[0])
}

func TestAppendReviewValidation(t *testing.T) {
	db := newTestDB(t)

	p := models.Product{ID: "p1", Name: "A", Price: 1, IsVisible: true, ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	require.NoError(t, store.UpsertProducts(db, []models.Product{p}))

	_, err := store.AppendReview(db, "p1", models.Review{UserName: "X", Rating: 6, Comment: "y"})
	require.ErrorIs(t, err, store.ErrInvalidReview)

	_, err = store.AppendReview(db, "p1", models.Review{UserName: "", Rating: 3, Comment: "y"})
	require.ErrorIs(t, err, store.ErrInvalidReview)

	_, err = store.AppendReview(db, "missing", models.Review{UserName: "X", Rating: 3, Comment: "y"})
	require.ErrorIs(t, err, store.ErrProductNotFound)
}
