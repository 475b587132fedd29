package domain

import "time"

// Admin represents an account allowed into the admin area. Admins are created
// once through the setup endpoint or via the createadmin CLI, never mutated by
// the API surface.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
