package repositories

import "errors"

// ErrNotFound is returned when a referenced record does not exist. Callers
// distinguish it from infrastructure errors with errors.Is: a missing
// reference is a recoverable data-quality condition, a failed read is not.
var ErrNotFound = errors.New("record not found")
