package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/texedit/internal/core/config"
	"github.com/colonyops/texedit/internal/core/editor"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "texedit", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/texedit/texedit.log
// On Linux: $XDG_STATE_HOME/texedit/texedit.log (defaults to ~/.local/state/texedit/texedit.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "texedit", "texedit.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "texedit", "texedit.log")
	}

	return filepath.Join(home, ".local", "state", "texedit", "texedit.log")
}

// loadSession builds an editor session from the config and, when path is
// non-empty, loads the document at path. Name and size limits are checked
// before the file is read so a rejected document never mutates state.
func loadSession(cfg *config.Config, path string) (*editor.Session, error) {
	session := editor.NewSession(cfg)

	if path == "" {
		_ = session.LoadDocument("")
		return session, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if err := session.CheckFile(filepath.Base(path), int(info.Size())); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if err := session.LoadDocument(string(data)); err != nil {
		return nil, err
	}
	return session, nil
}
