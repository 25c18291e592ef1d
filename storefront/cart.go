package storefront

import (
	"context"

	"github.com/nigel2421/wemisireact/models"
)

// Cart returns the inquiry cart contents.
func (s *State) Cart() []models.Product { return s.cart }

// InCart reports whether the product is already in the cart.
func (s *State) InCart(id string) bool {
	for _, p := range s.cart {
		if p.ID == id {
			return true
		}
	}
	return false
}

// AddToCart appends a product to the inquiry cart. Out-of-stock products are
// rejected with an error notice and the cart is left unchanged; a product
// already present is a silent no-op (one instance per id).
func (s *State) AddToCart(ctx context.Context, p models.Product) {
	if !p.IsInStock {
		s.notify(NoticeError, p.Name+" is out of stock")
		return
	}
	if s.InCart(p.ID) {
		return
	}
	s.cart = append(s.cart, p)
	s.notify(NoticeSuccess, p.Name+" added to cart")
	s.syncCart(ctx)
}

// RemoveFromCart drops a product from the cart by id.
func (s *State) RemoveFromCart(ctx context.Context, id string) {
	next := s.cart[:0]
	for _, p := range s.cart {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.cart = next
	s.syncCart(ctx)
}

// syncCart mirrors the cart to the session. A failed sync keeps the local
// cart (the inquiry flow still works) and surfaces the reason, replacing any
// success banner the caller just posted.
func (s *State) syncCart(ctx context.Context) {
	if err := s.api.SaveSessionCart(ctx, s.cart); err != nil {
		s.notify(NoticeError, "Could not save cart: "+err.Error())
	}
}
