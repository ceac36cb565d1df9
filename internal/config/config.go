package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	AppDirName        = "tui-notes"
	DataFileName      = "notes.json"
	ConfigFileName    = "config.yaml"
	JournalFileName   = "journal.db"
	LogFileName       = "tui-notes.log"
	DefaultExportPath = "~/tui-notes-export.md"
)

// Environment overrides, applied after the config file
const (
	EnvDataDir    = "TUINOTES_DATA_DIR"
	EnvExportPath = "TUINOTES_EXPORT_PATH"
	EnvJournal    = "TUINOTES_JOURNAL"
)

// BaseDirFunc returns the per-user directory the app directory lives in
type BaseDirFunc func() (string, error)

// DefaultBaseDir is the platform's user config directory
var DefaultBaseDir BaseDirFunc = os.UserConfigDir

// Config holds the resolved settings for all hosts
type Config struct {
	DataDir    string `yaml:"data_dir"`
	ExportPath string `yaml:"export_path"`
	Journal    bool   `yaml:"journal"`
	Debug      bool   `yaml:"debug"`

	// ConfigFile is the file the settings were read from, if any
	ConfigFile string `yaml:"-"`
}

// AppDir returns the app directory under base
func AppDir(base BaseDirFunc) (string, error) {
	if base == nil {
		base = DefaultBaseDir
	}
	dir, err := base()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, AppDirName), nil
}

// DataFile returns the default notes file location under base
func DataFile(base BaseDirFunc) (string, error) {
	dir, err := AppDir(base)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataFileName), nil
}

// Default returns the settings used when there is no config file
func Default(base BaseDirFunc) (*Config, error) {
	dir, err := AppDir(base)
	if err != nil {
		return nil, err
	}
	return &Config{
		DataDir:    dir,
		ExportPath: DefaultExportPath,
		Journal:    true,
	}, nil
}

// Load resolves the configuration: defaults, then config.yaml in the app
// directory, then environment overrides. A missing config file is not an error.
func Load(base BaseDirFunc) (*Config, error) {
	cfg, err := Default(base)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(cfg.DataDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg.ConfigFile = path
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.DataDir = ExpandHome(cfg.DataDir)
	cfg.ExportPath = ExpandHome(cfg.ExportPath)
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if env := os.Getenv(EnvDataDir); env != "" {
		c.DataDir = env
	}
	if env := os.Getenv(EnvExportPath); env != "" {
		c.ExportPath = env
	}
	if env := os.Getenv(EnvJournal); env != "" {
		on, err := cast.ToBoolE(env)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvJournal, err)
		}
		c.Journal = on
	}
	return nil
}

// DataFile returns the notes file location
func (c *Config) DataFile() string {
	return filepath.Join(c.DataDir, DataFileName)
}

// JournalFile returns the journal database location
func (c *Config) JournalFile() string {
	return filepath.Join(c.DataDir, JournalFileName)
}

// LogFile returns the TUI log file location
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, LogFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || len(path) > 1 && path[0] == '~' && os.IsPathSeparator(path[1]) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
