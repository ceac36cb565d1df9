package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuinotes/internal/adapters/tui/views"
	"tuinotes/internal/application"
	"tuinotes/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewGrid ViewState = iota
	ViewEdit
	ViewDelete
	ViewColor
	ViewPreview
	ViewHelp
)

// Options wires the app's optional collaborators
type Options struct {
	Exporter  ports.Exporter
	Clipboard ports.Clipboard
	Editor    ports.ContentEditor

	// Changes signals that the notes file changed on disk; Stale tells
	// external edits apart from the app's own saves
	Changes <-chan struct{}
	Stale   func() bool
}

// App is the main TUI application model
type App struct {
	board *application.Board
	opts  Options

	state   ViewState
	grid    *views.GridModel
	edit    *views.EditModel
	delete  *views.DeleteModel
	color   *views.ColorModel
	preview *views.PreviewModel
	help    *views.HelpModel

	width  int
	height int
	err    error
}

// NewApp creates a new TUI application
func NewApp(board *application.Board, opts Options) *App {
	return &App{
		board:   board,
		opts:    opts,
		state:   ViewGrid,
		grid:    views.NewGridModel(board, opts.Exporter, opts.Clipboard),
		edit:    views.NewEditModel(),
		delete:  views.NewDeleteModel(),
		color:   views.NewColorModel(),
		preview: views.NewPreviewModel(),
		help:    views.NewHelpModel(),
	}
}

// Err returns the error that ended the program, if any
func (a *App) Err() error {
	return a.err
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Grid returns the grid view
func (a *App) Grid() *views.GridModel {
	return a.grid
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.grid.Init(), a.waitForChange())
}

type fileChangedMsg struct{}

func (a *App) waitForChange() tea.Cmd {
	if a.opts.Changes == nil {
		return nil
	}
	changes := a.opts.Changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.grid.SetSize(msg.Width, msg.Height)
		a.edit.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.color.SetSize(msg.Width, msg.Height)
		a.preview.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.FatalMsg:
		a.err = msg.Err
		a.board.Logger().Error("invariant violated", "err", msg.Err)
		return a, tea.Quit

	case fileChangedMsg:
		if a.opts.Stale == nil || a.opts.Stale() {
			a.board.Logger().Info("notes file changed on disk, reloading")
			return a, tea.Batch(a.grid.Reload("Notes reloaded from disk"), a.waitForChange())
		}
		return a, a.waitForChange()

	// View switching messages
	case views.SwitchToGridMsg:
		a.state = ViewGrid
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToEditMsg:
		if note, ok := a.board.Grid().Slot(msg.Slot); ok {
			a.edit.SetNote(note)
			a.state = ViewEdit
			return a, a.edit.Init()
		}
		return a, nil

	case views.SwitchToDeleteMsg:
		if note, ok := a.board.Grid().Slot(msg.Slot); ok {
			a.delete.SetTarget(note)
			a.state = ViewDelete
		}
		return a, nil

	case views.SwitchToColorMsg:
		if note, ok := a.board.Grid().Slot(msg.Slot); ok {
			a.color.SetTarget(note)
			a.state = ViewColor
		}
		return a, nil

	case views.SwitchToPreviewMsg:
		if note, ok := a.board.Grid().Slot(msg.Slot); ok {
			a.preview.SetNote(note)
			a.state = ViewPreview
		}
		return a, nil

	// Dialog results go back to the grid
	case views.EditSubmitMsg, views.DeleteConfirmedMsg, views.ColorChosenMsg:
		a.state = ViewGrid
		_, cmd := a.grid.Update(msg)
		return a, cmd

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Slot)

	case editorFinishedMsg:
		return a, a.finishEditor(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewGrid:
		_, cmd = a.grid.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewColor:
		_, cmd = a.color.Update(msg)
	case ViewPreview:
		_, cmd = a.preview.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct {
	slot    int
	title   string
	session ports.EditSession
	err     error
}

func (a *App) openEditor(slot int) tea.Cmd {
	if a.opts.Editor == nil {
		return status("No editor configured", views.LevelWarning)
	}
	note, ok := a.board.Grid().Slot(slot)
	if !ok {
		return nil
	}

	session, err := a.opts.Editor.Begin(note.Title, note.Content)
	if err != nil {
		return status(err.Error(), views.LevelError)
	}

	return tea.ExecProcess(session.Cmd(), func(err error) tea.Msg {
		return editorFinishedMsg{slot: slot, title: note.Title, session: session, err: err}
	})
}

func (a *App) finishEditor(msg editorFinishedMsg) tea.Cmd {
	content, err := msg.session.Finish()
	if msg.err != nil {
		err = msg.err
	}
	if err != nil {
		return status("Editor failed: "+err.Error(), views.LevelError)
	}

	// A reload while the editor was open may have moved or replaced the note
	note, ok := a.board.Grid().Slot(msg.slot)
	if !ok || note.Title != msg.title {
		a.board.Logger().Warn("note changed while editing, edit dropped", "slot", msg.slot, "title", msg.title)
		return status(msgEditDropped, views.LevelWarning)
	}
	_, cmd := a.grid.Update(views.EditSubmitMsg{Slot: msg.slot, Title: note.Title, Content: content})
	return cmd
}

const msgEditDropped = "Note changed on disk while editing. Edit discarded."

func status(text string, level views.MessageLevel) tea.Cmd {
	return func() tea.Msg {
		return views.StatusMsg{Text: text, Level: level}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEdit:
		return a.edit.View()
	case ViewDelete:
		return a.delete.View()
	case ViewColor:
		return a.color.View()
	case ViewPreview:
		return a.preview.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.grid.View()
	}
}
