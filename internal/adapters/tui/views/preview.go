package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"tuinotes/internal/adapters/tui/styles"
	"tuinotes/internal/domain"
)

// PreviewKeyMap defines key bindings for the preview view
type PreviewKeyMap struct {
	Close key.Binding
	Up    key.Binding
	Down  key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "v"),
		key.WithHelp("esc", "close"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
	),
}

// PreviewModel shows a note rendered as Markdown
type PreviewModel struct {
	ViewState
	note     domain.Note
	rendered []string
	offset   int
}

// NewPreviewModel creates a new preview view
func NewPreviewModel() *PreviewModel {
	return &PreviewModel{}
}

// SetNote renders note for display
func (m *PreviewModel) SetNote(note domain.Note) {
	m.note = note
	m.offset = 0
	m.render()
}

// SetSize updates the view dimensions and re-wraps the note
func (m *PreviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.render()
}

func (m *PreviewModel) render() {
	out, err := RenderMarkdown(domain.RenderNote(m.note), m.Width-4)
	if err != nil {
		m.SetMessage(err.Error(), LevelError)
	}
	m.rendered = strings.Split(strings.TrimRight(out, "\n"), "\n")
}

// RenderMarkdown renders md for a terminal of the given width. When the
// renderer fails the source text is returned unchanged with the error.
func RenderMarkdown(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md, err
	}
	out, err := r.Render(md)
	if err != nil {
		return md, err
	}
	return out, nil
}

// Init initializes the preview
func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the preview
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PreviewKeys.Close):
			return m, switchTo(SwitchToGridMsg{})
		case key.Matches(msg, PreviewKeys.Up):
			if m.offset > 0 {
				m.offset--
			}
		case key.Matches(msg, PreviewKeys.Down):
			if m.offset < len(m.rendered)-1 {
				m.offset++
			}
		}
	}

	return m, nil
}

// View renders the preview
func (m *PreviewModel) View() string {
	visible := m.rendered[min(m.offset, len(m.rendered)):]
	if h := m.Height - 4; h > 0 && len(visible) > h {
		visible = visible[:h]
	}

	var b strings.Builder
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.Level))
		b.WriteString("\n")
	}
	b.WriteString(styles.StatusBar.Render(RenderHelpLine(PreviewKeys.Up, PreviewKeys.Close)))
	return b.String()
}
