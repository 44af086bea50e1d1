package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrBorrowID    = errors.New("invalid borrow id")
	ErrRole        = errors.New("role must be admin, librarian or borrower")
	ErrUnavailable = errors.New("kcls backend unavailable")
)

// BackendError is a non-2xx answer from the KCLS backend.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("kcls backend: status %d", e.Status)
	}
	return fmt.Sprintf("kcls backend: %s", e.Message)
}
