package admin

import "errors"

var (
	ErrValidation = errors.New("validation error")

	// ErrStateConflict covers a mentor who is missing, not a mentor at all, or
	// already verified; the caller is not told which.
	ErrStateConflict = errors.New("pending mentor not found")
)
