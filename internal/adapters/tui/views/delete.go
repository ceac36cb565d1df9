package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuinotes/internal/adapters/tui/styles"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel() *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.confirmed() },
			func() tea.Msg { return SwitchToGridMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) confirmed() tea.Msg {
	if m.Target == nil {
		return SwitchToGridMsg{}
	}
	return DeleteConfirmedMsg{Slot: m.Target.Position}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	question := "Delete note?"
	if m.Target != nil {
		question = "Delete '" + m.Target.Title + "'?"
	}

	body := RenderTargetInfo(m.Target) + "\n\n" +
		styles.MutedText.Render("The slot will be left empty.") + "\n\n" +
		RenderConfirmPrompt(question)

	return styles.App.Render(styles.Dialog.Render(body))
}
