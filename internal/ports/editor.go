package ports

import "os/exec"

// ContentEditor edits note content in an external program
type ContentEditor interface {
	// Begin prepares an edit of content. The returned session's command
	// must be run (e.g. via bubbletea's ExecProcess) before Finish.
	Begin(title, content string) (EditSession, error)
}

// EditSession is one pending external edit
type EditSession interface {
	Cmd() *exec.Cmd
	// Finish returns the edited content and cleans up
	Finish() (string, error)
}
