package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrSKUConflict indicates a register attempt with an already taken SKU.
	// The text is the canonical API message returned to clients.
	ErrSKUConflict = errors.New("SKU já cadastrado!")
)
