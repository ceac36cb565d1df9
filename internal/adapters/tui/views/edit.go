package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuinotes/internal/adapters/tui/styles"
	"tuinotes/internal/domain"
)

// EditKeyMap defines key bindings for the edit dialog
type EditKeyMap struct {
	Save   key.Binding
	Cancel key.Binding
	Tab    key.Binding
	Next   key.Binding
}

var EditKeys = EditKeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch field"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter"),
	),
}

const (
	focusTitle = iota
	focusContent
)

// EditModel is the dialog for a note's title and content
type EditModel struct {
	ViewState
	slot    int
	title   textinput.Model
	content textarea.Model
	focus   int
}

// NewEditModel creates a new edit dialog
func NewEditModel() *EditModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 120
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Content"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.SetHeight(8)

	return &EditModel{
		title:   ti,
		content: ta,
	}
}

// SetNote loads note into the form and focuses the title
func (m *EditModel) SetNote(note domain.Note) {
	m.slot = note.Position
	m.title.SetValue(note.Title)
	m.title.CursorEnd()
	m.content.SetValue(note.Content)
	m.ClearMessage()
	m.setFocus(focusTitle)
}

// SetSize updates the view dimensions
func (m *EditModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	w := max(20, width-12)
	m.title.Width = w
	m.content.SetWidth(w)
}

// Values returns the current title and content
func (m *EditModel) Values() (string, string) {
	return m.title.Value(), m.content.Value()
}

func (m *EditModel) setFocus(f int) {
	m.focus = f
	if f == focusTitle {
		m.content.Blur()
		m.title.Focus()
	} else {
		m.title.Blur()
		m.content.Focus()
	}
}

// Init returns the blink command for the title input
func (m *EditModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the edit dialog
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, EditKeys.Cancel):
			return m, switchTo(SwitchToGridMsg{})

		case key.Matches(msg, EditKeys.Save):
			return m, m.submit()

		case key.Matches(msg, EditKeys.Tab):
			m.setFocus(1 - m.focus)
			return m, nil

		case key.Matches(msg, EditKeys.Next) && m.focus == focusTitle:
			m.setFocus(focusContent)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *EditModel) submit() tea.Cmd {
	title, content := m.Values()
	if strings.TrimSpace(title) == "" {
		m.SetMessage("Title is required", LevelWarning)
		m.setFocus(focusTitle)
		return nil
	}
	return switchTo(EditSubmitMsg{
		Slot:    m.slot,
		Title:   strings.TrimSpace(title),
		Content: content,
	})
}

// View renders the edit dialog
func (m *EditModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Edit Note"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.fieldStyle(focusTitle).Render(m.title.View()))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Content"))
	b.WriteString("\n")
	b.WriteString(m.fieldStyle(focusContent).Render(m.content.View()))
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.Level))
		b.WriteString("\n")
	}
	b.WriteString(RenderHelpLine(EditKeys.Save, EditKeys.Tab, EditKeys.Cancel))

	return styles.App.Render(b.String())
}

func (m *EditModel) fieldStyle(f int) lipgloss.Style {
	if m.focus == f {
		return styles.InputFocused
	}
	return styles.InputField
}
