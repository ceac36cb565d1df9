package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"tuinotes/internal/ports"
)

// System implements ports.Clipboard with the platform clipboard
type System struct{}

// Ensure System implements Clipboard
var _ ports.Clipboard = System{}

// WriteAll copies text to the system clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
