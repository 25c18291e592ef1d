package models

import "time"

// Session is the server-side session record addressed by the signed cookie.
// Cart and Wishlist are per-session scratch space, reset on login.
type Session struct {
	ID        string     `gorm:"primaryKey"`
	IsAdmin   bool
	Username  string
	Cart      CartList   `gorm:"type:text"`
	Wishlist  StringList `gorm:"type:text"`
	ExpiresAt time.Time  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
