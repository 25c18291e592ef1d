package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nigel2421/wemisireact/client"
	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/routes"
	"github.com/nigel2421/wemisireact/session"
	"github.com/nigel2421/wemisireact/store"
)

func newBackend(t *testing.T) (*gorm.DB, *client.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "admin", PasswordHash: string(hash)}).Error)
	require.NoError(t, store.ReplaceCategories(db, []string{"Tiles", "Marble"}))

	r := gin.New()
	routes.SetupRoutes(r, db, session.NewManager(db, "test-secret", false))
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	api, err := client.New(server.URL + "/api")
	require.NoError(t, err)
	return db, api
}

func TestClientCatalogRoundTrip(t *testing.T) {
	db, api := newBackend(t)
	ctx := context.Background()

	seed := models.Product{ID: "p1", Name: "Pavers", Category: "Tiles", Price: 620, IsInStock: true, IsVisible: true,
		ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}
	require.NoError(t, store.UpsertProducts(db, []models.Product{seed}))

	products, err := api.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, seed, products[0])

	categories, err := api.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tiles", "Marble"}, categories)
}

func TestClientSurfacesServerErrorMessage(t *testing.T) {
	_, api := newBackend(t)
	ctx := context.Background()

	err := api.Login(ctx, "admin", "wrong")
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
	assert.False(t, api.IsAuthenticated())
}

func TestClientAuthLifecycle(t *testing.T) {
	_, api := newBackend(t)
	ctx := context.Background()

	assert.False(t, api.IsAuthenticated())
	require.NoError(t, api.Login(ctx, "admin", "hunter2"))
	assert.True(t, api.IsAuthenticated())

	ok, err := api.Status(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, api.Logout(ctx))
	assert.False(t, api.IsAuthenticated())

	ok, err = api.Status(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientUnauthorizedHook(t *testing.T) {
	db, api := newBackend(t)
	ctx := context.Background()

	fired := 0
	api.OnUnauthorized(func() { fired++ })

	require.NoError(t, api.Login(ctx, "admin", "hunter2"))

	// The server forgets the session behind the client's back.
	require.NoError(t, db.Where("1 = 1").Delete(&models.Session{}).Error)

	err := api.ReplaceCategories(ctx, []string{"Tiles", "Marble"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrUnauthenticated))
	assert.False(t, api.IsAuthenticated())
	assert.Equal(t, 1, fired)

	// Already logged out locally, so a second rejection stays quiet.
	err = api.ReplaceCategories(ctx, []string{"Tiles", "Marble"})
	require.Error(t, err)
	assert.Equal(t, 1, fired)
}

func TestClientAdminMutations(t *testing.T) {
	_, api := newBackend(t)
	ctx := context.Background()

	require.NoError(t, api.Login(ctx, "admin", "hunter2"))

	created, err := api.CreateProduct(ctx, models.Product{Name: "Slab", Category: "Marble", Price: 12415})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.Price = 13000
	updated, err := api.UpdateProduct(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 13000.0, updated.Price)

	require.NoError(t, api.DeleteProduct(ctx, created.ID))

	products, err := api.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClientAdminCallRejectedWhenLoggedOut(t *testing.T) {
	_, api := newBackend(t)
	ctx := context.Background()

	err := api.ReplaceProducts(ctx, []models.Product{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrUnauthenticated))
	assert.False(t, api.IsAuthenticated())
}

func TestClientSessionCartPersistence(t *testing.T) {
	_, api := newBackend(t)
	ctx := context.Background()

	cart := []models.Product{{ID: "p1", Name: "Pavers", Price: 620, IsInStock: true, IsVisible: true,
		ImageURLs: models.StringList{}, Reviews: models.ReviewList{}}}
	require.NoError(t, api.SaveSessionCart(ctx, cart))

	got, err := api.SessionCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart, got)

	require.NoError(t, api.SaveSessionWishlist(ctx, []string{"p1", "p2"}))
	wishlist, err := api.SessionWishlist(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, wishlist)
}

func TestClientNetworkErrorIsNotAPIError(t *testing.T) {
	api, err := client.New("http://127.0.0.1:1/api")
	require.NoError(t, err)

	_, err = api.Products(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "network error")
}
