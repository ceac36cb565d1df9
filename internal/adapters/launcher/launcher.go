package launcher

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Launcher opens files with the desktop's default application
type Launcher struct {
	goos  string
	start func(*exec.Cmd) error
}

// New creates a launcher for the running OS
func New() *Launcher {
	return &Launcher{
		goos:  runtime.GOOS,
		start: (*exec.Cmd).Start,
	}
}

// Open hands path to the default application and returns without waiting
func (l *Launcher) Open(path string) error {
	cmd, err := l.Command(path)
	if err != nil {
		return err
	}
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// Command builds the OS-specific open command for path
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	switch l.goos {
	case "darwin":
		return exec.Command("open", abs), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", abs), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", abs), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", l.goos)
	}
}
