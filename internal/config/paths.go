package config

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeEnv overrides the data directory (default ~/.dragscroll).
const HomeEnv = "DRAGSCROLL_HOME"

// Paths holds all the file system paths used by the application
type Paths struct {
	Home       string // ~/.dragscroll
	ConfigPath string // ~/.dragscroll/config.json
	BoardPath  string // ~/.dragscroll/board.json
	LogDir     string // ~/.dragscroll/logs
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	if home := strings.TrimSpace(os.Getenv(HomeEnv)); home != "" {
		return PathsAt(home), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return PathsAt(filepath.Join(home, ".dragscroll")), nil
}

// PathsAt lays out the standard files under root.
func PathsAt(root string) *Paths {
	return &Paths{
		Home:       root,
		ConfigPath: filepath.Join(root, "config.json"),
		BoardPath:  filepath.Join(root, "board.json"),
		LogDir:     filepath.Join(root, "logs"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
