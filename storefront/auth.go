package storefront

import "context"

// Phase returns the admin login state.
func (s *State) Phase() AuthPhase { return s.authPhase }

// AuthError returns the message from the last failed login, empty otherwise.
func (s *State) AuthError() string { return s.authError }

// Login drives the LoggedOut -> Authenticating -> LoggedIn machine. A failure
// lands back in LoggedOut with the error message; local catalog state is
// untouched either way.
func (s *State) Login(ctx context.Context, username, password string) error {
	s.authPhase = Authenticating
	s.authError = ""
	if err := s.api.Login(ctx, username, password); err != nil {
		s.authPhase = LoggedOut
		s.authError = err.Error()
		return err
	}
	s.authPhase = LoggedIn
	// Login resets the server-side session scratch space.
	s.cart = s.cart[:0]
	s.wishlist = s.wishlist[:0]
	return nil
}

// Logout tears down the admin session. Safe to call when already logged out.
func (s *State) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.authPhase = LoggedOut
	s.authError = ""
	return err
}
