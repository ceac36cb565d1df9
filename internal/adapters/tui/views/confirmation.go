package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuinotes/internal/adapters/tui/styles"
	"tuinotes/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "yes"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "no"),
	),
}

// ConfirmationModel provides a base for yes/no dialogs about one note
type ConfirmationModel struct {
	ViewState
	Target *domain.Note
	Keys   ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget sets the note the dialog is about
func (m *ConfirmationModel) SetTarget(note domain.Note) {
	m.Target = &note
}

// HandleKeyMsg processes key messages for confirmation views.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, func() tea.Msg { return onCancel() }
	case key.Matches(msg, m.Keys.Confirm):
		return true, func() tea.Msg { return onConfirm() }
	}
	return false, nil
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(DefaultConfirmKeys.Confirm, DefaultConfirmKeys.Cancel))
	return b.String()
}

// RenderTargetInfo renders a one-line summary of the target note
func RenderTargetInfo(note *domain.Note) string {
	if note == nil {
		return ""
	}
	return styles.InputLabel.Render("Slot "+strconv.Itoa(note.Position+1)+":") + " " + note.Title + "  " + styles.Swatch(note.ColorIndex)
}
