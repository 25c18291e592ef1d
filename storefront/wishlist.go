package storefront

import "context"

// Wishlist returns the wishlisted product ids.
func (s *State) Wishlist() []string { return s.wishlist }

// InWishlist reports wishlist membership.
func (s *State) InWishlist(id string) bool {
	for _, w := range s.wishlist {
		if w == id {
			return true
		}
	}
	return false
}

// ToggleWishlist adds the id when absent and removes it when present, so two
// toggles always restore the original contents.
func (s *State) ToggleWishlist(ctx context.Context, id string) {
	if s.InWishlist(id) {
		s.removeWishlistID(id)
	} else {
		s.wishlist = append(s.wishlist, id)
	}
	s.syncWishlist(ctx)
}

// RemoveFromWishlist drops the id.
func (s *State) RemoveFromWishlist(ctx context.Context, id string) {
	s.removeWishlistID(id)
	s.syncWishlist(ctx)
}

// MoveToCart moves a wishlist item into the cart. The wishlist entry is only
// removed when the product could actually be added: an out-of-stock item
// stays wishlisted so the visitor doesn't lose track of it.
func (s *State) MoveToCart(ctx context.Context, id string) {
	p, ok := s.findProduct(id)
	if !ok {
		s.removeWishlistID(id)
		s.syncWishlist(ctx)
		return
	}
	if !p.IsInStock {
		s.notify(NoticeError, p.Name+" is out of stock")
		return
	}
	added := false
	if !s.InCart(p.ID) {
		s.cart = append(s.cart, p)
		added = true
	}
	s.removeWishlistID(id)
	s.notify(NoticeSuccess, p.Name+" moved to cart")
	if added {
		s.syncCart(ctx)
	}
	s.syncWishlist(ctx)
}

func (s *State) removeWishlistID(id string) {
	next := s.wishlist[:0]
	for _, w := range s.wishlist {
		if w != id {
			next = append(next, w)
		}
	}
	s.wishlist = next
}

func (s *State) syncWishlist(ctx context.Context) {
	if err := s.api.SaveSessionWishlist(ctx, s.wishlist); err != nil {
		s.notify(NoticeError, "Could not save wishlist: "+err.Error())
	}
}
