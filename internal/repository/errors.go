package repository

import "errors"

// ErrStaleState is returned by the transactional session operations when the
// locked re-check finds the row no longer in the required state. Nothing has
// been written when it is returned.
var ErrStaleState = errors.New("row no longer in required state")
