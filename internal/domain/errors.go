package domain

import "errors"

var (
	// ErrNotFound is returned when an application, document, or job does
	// not exist. Repositories map sql.ErrNoRows (and zero-row deletes) to it.
	ErrNotFound = errors.New("record not found")
)
