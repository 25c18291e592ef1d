// Package storefront owns the client-side view state: product list, filters,
// cart, wishlist, selection and the notification slot. All mutation happens
// through named commands on State, which keeps mutation authority in one
// place instead of scattered across the UI tree.
//
// State is not safe for concurrent use: commands are expected to be
// serialized by the UI, matching the app it drives.
package storefront

import (
	"context"

	"github.com/nigel2421/wemisireact/client"
	"github.com/nigel2421/wemisireact/models"
)

// AllCategories is the filter value that matches every category.
const AllCategories = "All"

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is the transient banner. There is no queue: a new notice replaces
// whatever is currently displayed.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// AuthPhase is the admin login state machine.
type AuthPhase int

const (
	LoggedOut AuthPhase = iota
	Authenticating
	LoggedIn
)

type State struct {
	api            *client.Client
	whatsappNumber string

	products   []models.Product
	categories []string

	filter   string
	search   string
	selected string // product id shown in the detail view, "" when closed

	cart     []models.Product
	wishlist []string

	notice *Notice

	authPhase AuthPhase
	authError string
}

// New builds the coordinator. whatsappNumber is the inquiry recipient in
// international format without the leading plus.
func New(api *client.Client, whatsappNumber string) *State {
	s := &State{
		api:            api,
		whatsappNumber: whatsappNumber,
		filter:         AllCategories,
		cart:           []models.Product{},
		wishlist:       []string{},
	}
	// A rejected request means the session is gone; fall back to logged out.
	api.OnUnauthorized(func() {
		s.authPhase = LoggedOut
	})
	return s
}

// Refresh pulls products, categories and the session's cart/wishlist from the
// server. Cart/wishlist failures are tolerated (a fresh session has neither);
// catalog failures are not.
func (s *State) Refresh(ctx context.Context) error {
	products, err := s.api.Products(ctx)
	if err != nil {
		return err
	}
	categories, err := s.api.Categories(ctx)
	if err != nil {
		return err
	}
	s.products = products
	s.categories = categories

	if cart, err := s.api.SessionCart(ctx); err == nil {
		s.cart = cart
	}
	if wishlist, err := s.api.SessionWishlist(ctx); err == nil {
		s.wishlist = wishlist
	}
	if ok, err := s.api.Status(ctx); err == nil && ok {
		s.authPhase = LoggedIn
	}
	return nil
}

// Products returns the unfiltered product list, hidden items included.
func (s *State) Products() []models.Product { return s.products }

// Categories returns the category names for the filter bar.
func (s *State) Categories() []string { return s.categories }

// Notice returns the currently displayed banner, nil when none.
func (s *State) Notice() *Notice { return s.notice }

// ClearNotice dismisses the banner.
func (s *State) ClearNotice() { s.notice = nil }

func (s *State) notify(kind NoticeKind, message string) {
	s.notice = &Notice{Kind: kind, Message: message}
}

func (s *State) findProduct(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
