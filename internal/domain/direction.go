package domain

import (
	"fmt"
	"strings"
)

// Direction is an arrow-key direction on the grid
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the lowercase name of the direction
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses up/down/left/right
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	}
	return 0, fmt.Errorf("invalid direction %q (expected up, down, left or right)", s)
}

// MoveStep returns the slot reached from current in direction dir.
// ok is false when the step would leave the grid.
func MoveStep(current int, dir Direction) (target int, ok bool) {
	if !ValidSlot(current) {
		return 0, false
	}
	switch dir {
	case DirectionUp:
		if current >= GridColumns {
			return current - GridColumns, true
		}
	case DirectionDown:
		if current+GridColumns < MaxNotes {
			return current + GridColumns, true
		}
	case DirectionLeft:
		if current%GridColumns > 0 {
			return current - 1, true
		}
	case DirectionRight:
		if current%GridColumns < GridColumns-1 && current+1 < MaxNotes {
			return current + 1, true
		}
	}
	return 0, false
}
