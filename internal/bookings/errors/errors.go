package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrListingGone = errors.New("booking references a missing listing")
)
