package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

var emailFolder = cases.Fold()

// NormalizeEmail trims and lowercases an address via Unicode case folding so
// lookups match the stored form regardless of how it was typed.
func NormalizeEmail(email string) string {
	return emailFolder.String(strings.TrimSpace(email))
}
