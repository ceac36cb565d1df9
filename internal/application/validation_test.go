package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "title",
			value:     "Groceries",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "title",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "title",
			value:     " \t ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateSlot(t *testing.T) {
	tests := []struct {
		idx     int
		wantErr bool
	}{
		{idx: 0},
		{idx: 8},
		{idx: -1, wantErr: true},
		{idx: 9, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.idx), func(t *testing.T) {
			err := ValidateSlot("slotA", tt.idx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSlot(%d) error = %v, wantErr %v", tt.idx, err, tt.wantErr)
			}
			if err != nil && err.Error() != fmt.Sprintf("slotA: first slot must be between 0 and 8, got: %d", tt.idx) {
				t.Errorf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	for idx := 0; idx < NumColors; idx++ {
		if err := ValidateColor("colorIndex", idx); err != nil {
			t.Errorf("ValidateColor(%d) = %v", idx, err)
		}
	}
	if err := ValidateColor("colorIndex", NumColors); err == nil {
		t.Error("expected out of range color to be rejected")
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "validation", err: &ValidationError{Field: "slot"}, want: true},
		{name: "grid full", err: ErrGridFull, want: true},
		{name: "wrapped empty slot", err: fmt.Errorf("edit: %w", ErrSlotEmpty), want: true},
		{name: "persist", err: &PersistError{Op: "save", Err: errors.New("disk full")}, want: false},
		{name: "invariant", err: ErrInconsistent, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserError(tt.err); got != tt.want {
				t.Errorf("IsUserError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestPersistError(t *testing.T) {
	cause := errors.New("read-only file system")
	err := error(&PersistError{Op: "save", Err: cause})

	if !errors.Is(err, ErrPersist) {
		t.Error("expected PersistError to match ErrPersist")
	}
	if !errors.Is(err, cause) {
		t.Error("expected PersistError to unwrap to its cause")
	}
}
