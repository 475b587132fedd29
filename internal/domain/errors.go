package domain

import "errors"

// ErrNotFound is returned by repositories when no record matches. Handlers
// translate it to a 404; everything else becomes a 500.
var ErrNotFound = errors.New("not found")
