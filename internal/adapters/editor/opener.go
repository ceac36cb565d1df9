package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"tuinotes/internal/ports"
)

// Opener implements ports.ContentEditor using $EDITOR
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// Ensure Opener implements ContentEditor
var _ ports.ContentEditor = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// Begin writes content to a temp file and prepares the editor command.
// The caller runs Cmd (bubbletea's ExecProcess) and then calls Finish.
func (o *Opener) Begin(title, content string) (ports.EditSession, error) {
	argv := o.findEditor()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	f, err := os.CreateTemp("", "tui-notes-*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(argv[0], append(argv[1:], f.Name())...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return &session{title: title, path: f.Name(), cmd: cmd}, nil
}

// findEditor returns the editor command line to use
func (o *Opener) findEditor() []string {
	// Check $EDITOR first
	if editor := o.getenv("EDITOR"); strings.TrimSpace(editor) != "" {
		return strings.Fields(editor)
	}

	// Check $VISUAL
	if visual := o.getenv("VISUAL"); strings.TrimSpace(visual) != "" {
		return strings.Fields(visual)
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := o.lookPath(editor); err == nil {
			return []string{path}
		}
	}

	return nil
}

type session struct {
	title string
	path  string
	cmd   *exec.Cmd
}

func (s *session) Cmd() *exec.Cmd {
	return s.cmd
}

// Finish reads back the edited content. Editors append a final newline,
// which is dropped.
func (s *session) Finish() (string, error) {
	defer os.Remove(s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited %q: %w", s.title, err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}
