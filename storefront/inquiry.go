package storefront

import (
	"errors"
	"net/url"
	"strings"
)

// ErrEmptyCart is returned when building an inquiry link with nothing in the
// cart.
var ErrEmptyCart = errors.New("cart is empty")

// InquiryLink composes the WhatsApp hand-off for the inquiry cart: a deep
// link with the recipient number and a prefilled message listing the cart's
// product names. One-way hand-off, no request/response.
func (s *State) InquiryLink() (string, error) {
	if len(s.cart) == 0 {
		return "", ErrEmptyCart
	}
	names := make([]string, 0, len(s.cart))
	for _, p := range s.cart {
		names = append(names, p.Name)
	}
	message := "Hello! I'm interested in the following products:\n\n- " +
		strings.Join(names, ",\n- ") +
		"\n\nPlease provide me with more information. Thank you."
	return "https://wa.me/" + s.whatsappNumber + "?text=" + url.QueryEscape(message), nil
}
