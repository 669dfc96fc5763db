package errors

import "errors"

var (
	ErrNotFound = errors.New("review not found")

	ErrListingGone = errors.New("review references a missing listing")
)
