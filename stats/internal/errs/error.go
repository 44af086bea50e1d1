package errs

import "errors"

var (
	ErrDuplicate = errors.New("event already recorded")
	ErrRange     = errors.New("from must not be after to")
)
