package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that no record exists for the given id.
var ErrNotFound = errors.New("record not found")

// ValidationError is returned for malformed submissions. It is always
// caller-fixable and maps to a 4xx at the HTTP boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + e.Reason
}

// StorageError wraps a failure of the underlying store (unreachable,
// timeout, failed write). It maps to a 5xx at the HTTP boundary.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
