package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width   int
	Height  int
	Message string
	Level   MessageLevel
}

// MessageLevel selects how a status message is styled
type MessageLevel int

const (
	LevelInfo MessageLevel = iota
	LevelWarning
	LevelError
)

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, level MessageLevel) {
	s.Message = msg
	s.Level = level
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.Level = LevelInfo
}

// View switching messages

type SwitchToGridMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToEditMsg struct {
	Slot int
}

type SwitchToDeleteMsg struct {
	Slot int
}

type SwitchToColorMsg struct {
	Slot int
}

type SwitchToPreviewMsg struct {
	Slot int
}

// OpenEditorMsg asks the app to edit a note's content in $EDITOR
type OpenEditorMsg struct {
	Slot int
}

// Dialog results, handled by the grid

type EditSubmitMsg struct {
	Slot    int
	Title   string
	Content string
}

type DeleteConfirmedMsg struct {
	Slot int
}

type ColorChosenMsg struct {
	Slot  int
	Color int
}

// StatusMsg shows a message in the grid's status line
type StatusMsg struct {
	Text  string
	Level MessageLevel
}

// FatalMsg reports a broken invariant; the app exits with Err
type FatalMsg struct {
	Err error
}
