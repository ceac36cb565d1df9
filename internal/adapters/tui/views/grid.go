package views

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuinotes/internal/adapters/tui/styles"
	"tuinotes/internal/application"
	"tuinotes/internal/application/commands"
	"tuinotes/internal/domain"
	"tuinotes/internal/ports"
)

// GridKeyMap defines key bindings for the grid view
type GridKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Color    key.Binding
	Move     key.Binding
	Cancel   key.Binding
	Save     key.Binding
	Reload   key.Binding
	Export   key.Binding
	Copy     key.Binding
	Preview  key.Binding
	External key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var GridKeys = GridKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Color: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "color"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel move"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Reload: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reload"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "export"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Preview: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "preview"),
	),
	External: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "$EDITOR"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

const (
	headerHeight = 2
	footerHeight = 3
	minCellW     = 12
	minCellH     = 5
)

const (
	msgGridFull     = "Grid is full! Remove a note first."
	msgNoNotes      = "No notes to export."
	msgMoveBanner   = "MOVE MODE - Arrows to move, Enter/Esc to exit"
	msgSelectDelete = "Select a note to delete."
	msgSelectColor  = "Select a note to change color."
	msgSelectMove   = "Select a note to move."
	msgSelectCopy   = "Select a note to copy."
	msgSelectView   = "Select a note to preview."
	msgSelectEdit   = "Select a note to edit."
)

// GridModel is the main 3x3 board view
type GridModel struct {
	ViewState
	board     *application.Board
	exporter  ports.Exporter
	clipboard ports.Clipboard

	cursor int
	hits   *HitMap
	cellW  int
	cellH  int

	dragging   bool
	dragSource int
	dragOver   int
}

// NewGridModel creates the grid view
func NewGridModel(board *application.Board, exporter ports.Exporter, clipboard ports.Clipboard) *GridModel {
	m := &GridModel{
		board:     board,
		exporter:  exporter,
		clipboard: clipboard,
		hits:      NewHitMap(),
		dragOver:  -1,
	}
	m.SetSize(80, 24)
	return m
}

// Init initializes the grid
func (m *GridModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions and recomputes the cell layout
func (m *GridModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)

	m.cellW = max(minCellW, width/domain.GridColumns)
	rows := domain.MaxNotes / domain.GridColumns
	m.cellH = max(minCellH, (height-headerHeight-footerHeight)/rows)

	m.hits.Clear()
	for slot := 0; slot < domain.MaxNotes; slot++ {
		row, col := slot/domain.GridColumns, slot%domain.GridColumns
		m.hits.Add(slot, Rect{
			X: col * m.cellW,
			Y: headerHeight + row*m.cellH,
			W: m.cellW,
			H: m.cellH,
		})
	}
}

// Cursor returns the focused slot
func (m *GridModel) Cursor() int {
	return m.cursor
}

// SetCursor focuses slot
func (m *GridModel) SetCursor(slot int) {
	if domain.ValidSlot(slot) {
		m.cursor = slot
	}
}

// Dragging returns the drag source while a drag is in progress
func (m *GridModel) Dragging() (int, bool) {
	return m.dragSource, m.dragging
}

// Update handles messages for the grid
func (m *GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case StatusMsg:
		m.SetMessage(msg.Text, msg.Level)
		return m, nil

	case EditSubmitMsg:
		return m, m.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewEditNoteCommand(m.board, msg.Slot, msg.Title, msg.Content).Execute(ctx)
			if res == nil {
				return "", err
			}
			return res.Message, err
		})

	case DeleteConfirmedMsg:
		return m, m.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewDeleteNoteCommand(m.board, msg.Slot).Execute(ctx)
			if res == nil {
				return "", err
			}
			return res.Message, err
		})

	case ColorChosenMsg:
		return m, m.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewRecolorNoteCommand(m.board, msg.Slot, msg.Color).Execute(ctx)
			if res == nil {
				return "", err
			}
			return res.Message, err
		})

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *GridModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	grid := m.board.Grid()

	if _, moving := grid.Moving(); moving {
		if dir, ok := direction(msg); ok {
			return m.moveSelected(dir)
		}
		if key.Matches(msg, GridKeys.Cancel, GridKeys.Move) || msg.Type == tea.KeyEnter {
			grid.ExitMoveMode()
			return nil
		}
	}

	if dir, ok := direction(msg); ok {
		if target, ok := domain.MoveStep(m.cursor, dir); ok {
			m.cursor = target
		}
		return nil
	}

	occupied := grid.Occupied(m.cursor)

	switch {
	case key.Matches(msg, GridKeys.Quit):
		return tea.Quit

	case key.Matches(msg, GridKeys.Add):
		return m.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewAddNoteCommand(m.board, m.cursor).Execute(ctx)
			if res == nil {
				return "", err
			}
			m.cursor = res.Note.Position
			return res.Message, err
		})

	case key.Matches(msg, GridKeys.Edit):
		if !occupied {
			return nil
		}
		return switchTo(SwitchToEditMsg{Slot: m.cursor})

	case key.Matches(msg, GridKeys.Delete):
		if !occupied {
			m.SetMessage(msgSelectDelete, LevelWarning)
			return nil
		}
		return switchTo(SwitchToDeleteMsg{Slot: m.cursor})

	case key.Matches(msg, GridKeys.Color):
		if !occupied {
			m.SetMessage(msgSelectColor, LevelWarning)
			return nil
		}
		return switchTo(SwitchToColorMsg{Slot: m.cursor})

	case key.Matches(msg, GridKeys.Move):
		if !occupied {
			m.SetMessage(msgSelectMove, LevelWarning)
			return nil
		}
		return m.report("", grid.EnterMoveMode(m.cursor))

	case key.Matches(msg, GridKeys.Cancel):
		return nil

	case key.Matches(msg, GridKeys.Save):
		err := m.board.Persist(context.Background())
		return m.report("Notes saved!", err)

	case key.Matches(msg, GridKeys.Reload):
		return m.Reload("Notes reloaded!")

	case key.Matches(msg, GridKeys.Export):
		return m.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewExportNotesCommand(m.board, m.exporter).Execute(ctx)
			if res == nil {
				return "", err
			}
			return res.Message, err
		})

	case key.Matches(msg, GridKeys.Copy):
		if !occupied {
			m.SetMessage(msgSelectCopy, LevelWarning)
			return nil
		}
		return m.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewCopyNoteCommand(m.board, m.clipboard, m.cursor).Execute(ctx)
			if res == nil {
				return "", err
			}
			return res.Message, err
		})

	case key.Matches(msg, GridKeys.Preview):
		if !occupied {
			m.SetMessage(msgSelectView, LevelWarning)
			return nil
		}
		return switchTo(SwitchToPreviewMsg{Slot: m.cursor})

	case key.Matches(msg, GridKeys.External):
		if !occupied {
			m.SetMessage(msgSelectEdit, LevelWarning)
			return nil
		}
		return switchTo(OpenEditorMsg{Slot: m.cursor})

	case key.Matches(msg, GridKeys.Help):
		return switchTo(SwitchToHelpMsg{})
	}

	return nil
}

// moveSelected steps the moving note and keeps the cursor on it.
// Steps off the grid are ignored.
func (m *GridModel) moveSelected(dir domain.Direction) tea.Cmd {
	target, err := m.board.Grid().MoveSelected(dir)
	if errors.Is(err, application.ErrNoTarget) {
		return nil
	}
	if err != nil {
		return m.report("", err)
	}
	m.cursor = target
	return m.report("", m.board.Persist(context.Background()))
}

func (m *GridModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	slot, hit := m.hits.Test(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !hit {
			return nil
		}
		m.cursor = slot
		if m.board.Grid().Occupied(slot) {
			m.dragging = true
			m.dragSource = slot
			m.dragOver = slot
		}

	case tea.MouseActionMotion:
		if !m.dragging {
			return nil
		}
		if hit {
			m.dragOver = slot
		} else {
			m.dragOver = -1
		}

	case tea.MouseActionRelease:
		if !m.dragging {
			return nil
		}
		source := m.dragSource
		m.endDrag()
		if !hit || slot == source {
			return nil
		}
		return m.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewSwapNotesCommand(m.board, source, slot).Execute(ctx)
			if res == nil {
				return "", err
			}
			m.cursor = slot
			return res.Message, err
		})
	}

	return nil
}

func (m *GridModel) endDrag() {
	m.dragging = false
	m.dragSource = 0
	m.dragOver = -1
}

// Reload replaces the board with the stored notes
func (m *GridModel) Reload(message string) tea.Cmd {
	m.endDrag()
	_, err := m.board.Load(context.Background())
	return m.report(message, err)
}

// report turns a command outcome into a status message. Broken invariants
// end the program.
func (m *GridModel) report(message string, err error) tea.Cmd {
	var perr *application.PersistError
	switch {
	case err == nil:
		if message != "" {
			m.SetMessage(message, LevelInfo)
		}
	case errors.Is(err, application.ErrInconsistent):
		return func() tea.Msg { return FatalMsg{Err: err} }
	case errors.As(err, &perr):
		m.SetMessage("Save error: "+perr.Err.Error(), LevelError)
	case errors.Is(err, application.ErrGridFull):
		m.SetMessage(msgGridFull, LevelWarning)
	case errors.Is(err, application.ErrNoNotes):
		m.SetMessage(msgNoNotes, LevelWarning)
	case application.IsUserError(err):
		m.SetMessage(err.Error(), LevelWarning)
	default:
		m.SetMessage(err.Error(), LevelError)
	}
	return nil
}

// run executes fn and reports its outcome
func (m *GridModel) run(fn func(ctx context.Context) (string, error)) tea.Cmd {
	message, err := fn(context.Background())
	return m.report(message, err)
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func direction(msg tea.KeyMsg) (domain.Direction, bool) {
	switch {
	case key.Matches(msg, GridKeys.Up):
		return domain.DirectionUp, true
	case key.Matches(msg, GridKeys.Down):
		return domain.DirectionDown, true
	case key.Matches(msg, GridKeys.Left):
		return domain.DirectionLeft, true
	case key.Matches(msg, GridKeys.Right):
		return domain.DirectionRight, true
	}
	return 0, false
}

// View renders the grid view
func (m *GridModel) View() string {
	var b strings.Builder

	header := styles.Title.Render("TUI Notes")
	if _, moving := m.board.Grid().Moving(); moving {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", styles.ModeBadge.Render(msgMoveBanner))
	}
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.Level))
	} else {
		b.WriteString(styles.StatusBar.Render(m.statusText()))
	}
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		GridKeys.Add, GridKeys.Edit, GridKeys.Delete, GridKeys.Color,
		GridKeys.Move, GridKeys.Save, GridKeys.Export, GridKeys.Help, GridKeys.Quit,
	))

	return b.String()
}

func (m *GridModel) renderGrid() string {
	grid := m.board.Grid()
	moving, isMoving := grid.Moving()

	var rows []string
	for row := 0; row < domain.MaxNotes/domain.GridColumns; row++ {
		var cells []string
		for col := 0; col < domain.GridColumns; col++ {
			slot := row*domain.GridColumns + col
			state := CardState{
				Focused:    slot == m.cursor,
				Moving:     isMoving && slot == moving,
				DropTarget: m.dragging && slot == m.dragOver && slot != m.dragSource,
			}
			var note *domain.Note
			if n, ok := grid.Slot(slot); ok {
				note = &n
			}
			cells = append(cells, RenderCard(note, slot, m.cellW, m.cellH, state))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *GridModel) statusText() string {
	grid := m.board.Grid()
	if m.dragging {
		return "Drop on another slot to swap"
	}
	if n, ok := grid.Slot(m.cursor); ok {
		return n.Title + " · " + n.ColorName()
	}
	return "Empty slot"
}
