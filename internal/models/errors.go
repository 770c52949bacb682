package models

import "errors"

// Errors reported by repositories regardless of the backing store.
var (
	ErrInvalidID         = errors.New("invalid identifier")
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
)
