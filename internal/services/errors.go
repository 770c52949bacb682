package services

import "errors"

// ValidationError reports input the caller can correct and resubmit.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Error variables
var (
	ErrTitleOrURLMissing = &ValidationError{Message: "title or url missing"}
	ErrUsernameMissing   = &ValidationError{Message: "username missing"}
	ErrUsernameNotUnique = &ValidationError{Message: "username must be unique"}
	ErrPasswordTooShort  = &ValidationError{Message: "password must contain atleast 3 characters"}
	ErrPasswordTooLong   = &ValidationError{Message: "password must contain at most 72 bytes"}
	ErrNegativeLikes     = &ValidationError{Message: "likes must not be negative"}

	// ErrMalformedID is returned when an identifier does not address a stored blog.
	ErrMalformedID = errors.New("malformatted id")
)
