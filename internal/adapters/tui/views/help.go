package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuinotes/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToGridMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("TUI Notes Help"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("↑ ↓ ← → / hjkl", "Move between slots"))
	b.WriteString(helpLine("click", "Focus a slot"))
	b.WriteString(helpLine("drag", "Swap two slots"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(helpLine("a", "Add note"))
	b.WriteString(helpLine("e / Enter", "Edit note"))
	b.WriteString(helpLine("E", "Edit content in $EDITOR"))
	b.WriteString(helpLine("d", "Delete note"))
	b.WriteString(helpLine("c", "Change color"))
	b.WriteString(helpLine("y", "Copy note to clipboard"))
	b.WriteString(helpLine("v", "Preview note"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Move mode"))
	b.WriteString("\n")
	b.WriteString(helpLine("m", "Toggle move mode"))
	b.WriteString(helpLine("arrows", "Move the note"))
	b.WriteString(helpLine("Enter / Esc", "Exit move mode"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("Ctrl+S", "Save notes"))
	b.WriteString(helpLine("Ctrl+R", "Reload notes"))
	b.WriteString(helpLine("Ctrl+E", "Export to Markdown"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 18)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	w := len([]rune(s))
	if w >= length {
		return s
	}
	return s + strings.Repeat(" ", length-w)
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
