package application

import (
	"fmt"
	"strings"

	"tuinotes/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts field names to space-separated words
// for more readable error messages (e.g., "colorIndex" -> "color index")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"slot":       "slot",
		"slotA":      "first slot",
		"slotB":      "second slot",
		"colorIndex": "color index",
		"title":      "title",
		"direction":  "direction",
		"path":       "export path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateSlot checks that idx addresses one of the grid slots
func ValidateSlot(fieldName string, idx int) error {
	if !domain.ValidSlot(idx) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be between 0 and %d, got: %d", formatFieldName(fieldName), domain.MaxNotes-1, idx),
		}
	}
	return nil
}

// ValidateColor checks that idx is a palette index
func ValidateColor(fieldName string, idx int) error {
	if !domain.ValidColor(idx) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be between 0 and %d, got: %d", formatFieldName(fieldName), domain.NumColors-1, idx),
		}
	}
	return nil
}
