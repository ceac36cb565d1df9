package application

import (
	"errors"
	"fmt"

	"tuinotes/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrGridFull     = domain.ErrGridFull
	ErrSlotEmpty    = domain.ErrSlotEmpty
	ErrInvalidSlot  = domain.ErrInvalidSlot
	ErrInvalidColor = domain.ErrInvalidColor
	ErrEmptyTitle   = domain.ErrEmptyTitle
	ErrNoTarget     = domain.ErrNoTarget
	ErrNotMoving    = domain.ErrNotMoving
	ErrInconsistent = domain.ErrInconsistent

	ErrNoNotes  = errors.New("no notes")
	ErrPersist  = errors.New("could not save notes")
	ErrNotFound = errors.New("not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistError reports a failed save. The in-memory board is unaffected.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrPersist, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func (e *PersistError) Is(target error) bool {
	return target == ErrPersist
}

// IsUserError reports whether err is a rejected user action rather than a failure
func IsUserError(err error) bool {
	var valErr *ValidationError
	switch {
	case errors.As(err, &valErr),
		errors.Is(err, ErrGridFull),
		errors.Is(err, ErrSlotEmpty),
		errors.Is(err, ErrInvalidSlot),
		errors.Is(err, ErrInvalidColor),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrNoTarget),
		errors.Is(err, ErrNotMoving),
		errors.Is(err, ErrNoNotes):
		return true
	}
	return false
}
