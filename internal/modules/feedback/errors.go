package feedback

import "errors"

var (
	ErrValidation = errors.New("validation error")

	// ErrStateConflict covers both a session that does not exist and one the
	// rater cannot rate yet; callers are not told which.
	ErrStateConflict = errors.New("session not found or not completed")

	ErrDuplicate = errors.New("feedback already submitted")
)
