package repositories

import "errors"

var (
	// ErrNotFound is returned when a referenced document does not exist,
	// or when a list-field removal matched nothing.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an insert or set-add hits a value that
	// is already present.
	ErrDuplicate = errors.New("document already exists")
)
