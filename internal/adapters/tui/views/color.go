package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuinotes/internal/adapters/tui/styles"
	"tuinotes/internal/domain"
)

// ColorKeyMap defines key bindings for the color picker
type ColorKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

var ColorKeys = ColorKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("h", "left", "k", "up"),
		key.WithHelp("←/→", "pick"),
	),
	Next: key.NewBinding(
		key.WithKeys("l", "right", "j", "down", "tab"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter/1-6", "choose"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

// ColorModel lets the user pick a palette color for a note
type ColorModel struct {
	ViewState
	slot     int
	title    string
	selected int
}

// NewColorModel creates a new color picker
func NewColorModel() *ColorModel {
	return &ColorModel{}
}

// SetTarget opens the picker for note, preselecting its current color
func (m *ColorModel) SetTarget(note domain.Note) {
	m.slot = note.Position
	m.title = note.Title
	m.selected = note.ColorIndex
}

// Selected returns the highlighted palette index
func (m *ColorModel) Selected() int {
	return m.selected
}

// Init initializes the color picker
func (m *ColorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the color picker
func (m *ColorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ColorKeys.Cancel):
			return m, switchTo(SwitchToGridMsg{})
		case key.Matches(msg, ColorKeys.Prev):
			m.selected = (m.selected + domain.NumColors - 1) % domain.NumColors
		case key.Matches(msg, ColorKeys.Next):
			m.selected = (m.selected + 1) % domain.NumColors
		case key.Matches(msg, ColorKeys.Choose):
			return m, m.choose(m.selected)
		default:
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= domain.NumColors {
				return m, m.choose(n - 1)
			}
		}
	}

	return m, nil
}

func (m *ColorModel) choose(idx int) tea.Cmd {
	return switchTo(ColorChosenMsg{Slot: m.slot, Color: idx})
}

// View renders the color picker
func (m *ColorModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Choose a color"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.title))
	b.WriteString("\n\n")

	for i := range domain.Colors {
		marker := "  "
		if i == m.selected {
			marker = styles.HelpKey.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(styles.HelpDesc.Render(strconv.Itoa(i+1) + " "))
		b.WriteString(styles.Swatch(i))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(ColorKeys.Prev, ColorKeys.Choose, ColorKeys.Cancel))

	return styles.App.Render(styles.Dialog.Render(b.String()))
}
