package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidWindow     = errors.New("invalid time window")
	ErrPastDate          = errors.New("date is in the past")
	ErrInvalidSpace      = errors.New("unknown or inactive space")
	ErrConflict          = errors.New("reservation conflict")
	ErrNotFound          = errors.New("reservation not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrForbidden         = errors.New("forbidden")
)

// ConflictError names the existing reservation occupying part of the
// requested window. errors.Is(err, ErrConflict) matches it.
type ConflictError struct {
	ExistingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("window conflicts with reservation %d", e.ExistingID)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
