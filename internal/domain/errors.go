package domain

import (
	"errors"
	"fmt"
)

// Rejections of user input. Callers report these as warnings; the grid is unchanged.
var (
	ErrGridFull     = errors.New("grid is full")
	ErrSlotEmpty    = errors.New("slot is empty")
	ErrInvalidSlot  = errors.New("invalid slot")
	ErrInvalidColor = errors.New("invalid color")
	ErrEmptyTitle   = errors.New("title is required")
	ErrNoTarget     = errors.New("no target in that direction")
	ErrNotMoving    = errors.New("not in move mode")
)

// ErrInconsistent marks a broken grid invariant. It is never a user error.
var ErrInconsistent = errors.New("grid invariant violated")

// SlotError ties a rejection to the slot it happened on
type SlotError struct {
	Slot int
	Err  error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %d: %v", e.Slot, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}

func slotErr(slot int, err error) error {
	return &SlotError{Slot: slot, Err: err}
}
