package session

import "errors"

var (
	ErrValidation = errors.New("validation error")
	// ErrStateConflict covers both "not found" and "not in the required
	// state": the two are deliberately not distinguished for lifecycle
	// operations, so a caller cannot probe for slots it does not own.
	ErrStateConflict = errors.New("session not found or in wrong state")
)
