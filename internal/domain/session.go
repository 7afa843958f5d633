package domain

import "time"

// Session is the stored remote credential for the current account. Presence
// of a non-empty AccessToken gates the protected views; the token's content
// is issued and validated remotely and is opaque here.
type Session struct {
	Email       string
	AccessToken string
	SavedAt     time.Time
}
