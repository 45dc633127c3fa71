package dispute

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("booking belongs to another user")
	ErrDuplicate     = errors.New("dispute already exists for this booking")
	ErrStateConflict = errors.New("dispute not found or already resolved")
)
