package diagram

import "errors"

// Structural mutation errors. Callers are expected to guarantee id
// uniqueness upstream (timestamp-derived ids), so ErrDuplicateID usually
// indicates a caller bug rather than a recoverable condition.
var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrNotFound    = errors.New("not found")
)
