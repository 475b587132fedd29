package domain

import "time"

// Client is a logo-wall entry on the public site. Listings are always ordered
// ascending by Order.
type Client struct {
	ID          string
	Name        string
	Logo        string
	Subtitle    string
	Description string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClientPatch carries a partial update; nil fields are left untouched.
type ClientPatch struct {
	Name        *string
	Logo        *string
	Subtitle    *string
	Description *string
	Order       *int
}
