// Package client is the data layer between the storefront and the API. It
// attaches session credentials through a cookie jar, serializes bodies as
// JSON, and normalizes every non-success response into a typed failure so
// callers can always tell success from failure before touching local state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"

	"github.com/nigel2421/wemisireact/content"
	"github.com/nigel2421/wemisireact/models"
)

// ErrUnauthenticated marks 401/403 responses. The client flips its local
// logged-in indicator before returning it, so the caller can treat the user
// as logged out without inspecting status codes.
var ErrUnauthenticated = errors.New("not authenticated")

// APIError carries the server-provided reason for a failed request, or a
// generic fallback when the server gave none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrUnauthenticated) match auth failures.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthenticated && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

type Client struct {
	base string
	http *http.Client

	mu             sync.Mutex
	authenticated  bool
	onUnauthorized func()
}

// New builds a client for the API at base (e.g. "http://localhost:3000/api").
// The cookie jar holds the session credential across calls.
func New(base string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Jar: jar},
	}, nil
}

// OnUnauthorized registers a hook fired whenever the server rejects a request
// with 401 or 403; the storefront uses it for reactive logout.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// IsAuthenticated reports the client's local session indicator. It tracks the
// last observed login/logout/auth-failure, not live server state.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

func (c *Client) setAuthenticated(v bool) {
	c.mu.Lock()
	hook := c.onUnauthorized
	was := c.authenticated
	c.authenticated = v
	c.mu.Unlock()
	if was && !v && hook != nil {
		hook()
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp)}
		if apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden {
			c.setAuthenticated(false)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func readErrorMessage(resp *http.Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("Request failed with status %d", resp.StatusCode)
}

// --- Public calls ---

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) SubmitReview(ctx context.Context, productID string, review models.Review) (models.Review, error) {
	var saved models.Review
	err := c.do(ctx, http.MethodPost, "/products/"+productID+"/reviews", review, &saved)
	return saved, err
}

func (c *Client) BlogPosts(ctx context.Context) ([]content.BlogPost, error) {
	var posts []content.BlogPost
	if err := c.do(ctx, http.MethodGet, "/blog", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) BlogPost(ctx context.Context, id string) (content.BlogPost, error) {
	var post content.BlogPost
	err := c.do(ctx, http.MethodGet, "/blog/"+id, nil, &post)
	return post, err
}

// --- Auth ---

func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.authenticated = true
	c.mu.Unlock()
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	c.mu.Lock()
	c.authenticated = false
	c.mu.Unlock()
	return err
}

func (c *Client) Status(ctx context.Context) (bool, error) {
	var out struct {
		IsAuthenticated bool `json:"isAuthenticated"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/status", nil, &out); err != nil {
		return false, err
	}
	c.mu.Lock()
	c.authenticated = out.IsAuthenticated
	c.mu.Unlock()
	return out.IsAuthenticated, nil
}

// --- Admin calls ---

func (c *Client) ReplaceProducts(ctx context.Context, products []models.Product) error {
	return c.do(ctx, http.MethodPut, "/products", products, nil)
}

func (c *Client) ReplaceCategories(ctx context.Context, names []string) error {
	return c.do(ctx, http.MethodPut, "/categories", names, nil)
}

func (c *Client) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var created models.Product
	err := c.do(ctx, http.MethodPost, "/products", p, &created)
	return created, err
}

func (c *Client) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var updated models.Product
	err := c.do(ctx, http.MethodPut, "/products/"+p.ID, p, &updated)
	return updated, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}

func (c *Client) RenameCategory(ctx context.Context, oldName, newName string) error {
	body := map[string]string{"oldName": oldName, "newName": newName}
	return c.do(ctx, http.MethodPut, "/categories/rename", body, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+name, nil, nil)
}

// --- Session-scoped cart/wishlist ---

func (c *Client) SessionCart(ctx context.Context) ([]models.Product, error) {
	var cart []models.Product
	if err := c.do(ctx, http.MethodGet, "/session/cart", nil, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (c *Client) SaveSessionCart(ctx context.Context, cart []models.Product) error {
	if cart == nil {
		cart = []models.Product{}
	}
	return c.do(ctx, http.MethodPost, "/session/cart", map[string]interface{}{"cart": cart}, nil)
}

func (c *Client) SessionWishlist(ctx context.Context) ([]string, error) {
	var wishlist []string
	if err := c.do(ctx, http.MethodGet, "/session/wishlist", nil, &wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

func (c *Client) SaveSessionWishlist(ctx context.Context, wishlist []string) error {
	if wishlist == nil {
		wishlist = []string{}
	}
	return c.do(ctx, http.MethodPost, "/session/wishlist", map[string]interface{}{"wishlist": wishlist}, nil)
}
