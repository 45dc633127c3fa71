package catalog

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("mentor not found")
	ErrProfileExists = errors.New("profile already exists")
)
