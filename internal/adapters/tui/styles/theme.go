package styles

import (
	"github.com/charmbracelet/lipgloss"

	"tuinotes/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#1F2937")

	// Note palette, indexed like domain.Colors
	NoteYellow = lipgloss.Color("#FDE68A")
	NoteGreen  = lipgloss.Color("#A7F3D0")
	NoteBlue   = lipgloss.Color("#BFDBFE")
	NotePink   = lipgloss.Color("#FBCFE8")
	NoteOrange = lipgloss.Color("#FED7AA")
	NotePurple = lipgloss.Color("#DDD6FE")

	noteColors = [domain.NumColors]lipgloss.Color{
		NoteYellow, NoteGreen, NoteBlue, NotePink, NoteOrange, NotePurple,
	}

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Grid cells
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(Black).
		Padding(0, 1)

	CardTitle = lipgloss.NewStyle().
			Bold(true)

	EmptySlot = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Foreground(Muted).
			Align(lipgloss.Center, lipgloss.Center)

	// Cursor and move mode borders
	Focused    = Primary
	MovingEdge = Warning
	DropTarget = Secondary

	ModeBadge = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Dialog frame for modal views
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// NoteColor returns the background for a palette index
func NoteColor(idx int) lipgloss.Color {
	if !domain.ValidColor(idx) {
		idx = 0
	}
	return noteColors[idx]
}

// Swatch renders a small block in the note color
func Swatch(idx int) string {
	return lipgloss.NewStyle().
		Background(NoteColor(idx)).
		Foreground(Black).
		Padding(0, 1).
		Render(domain.ColorName(idx))
}
