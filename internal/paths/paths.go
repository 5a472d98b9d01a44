// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// LocalDir holds a project-local config next to where sporthub runs.
	LocalDir   = ".sporthub"
	configFile = "config.yaml"
)

// LocalConfig returns dir/.sporthub/config.yaml.
func LocalConfig(dir string) string {
	return filepath.Join(dir, LocalDir, configFile)
}

// UserConfigDir returns home/.config/sporthub, or "" without a home.
func UserConfigDir(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "sporthub")
}

// FindConfig returns the first existing config file in lookup order:
//   - cwd/.sporthub/config.yaml
//   - home/.config/sporthub/config.yaml
func FindConfig(cwd, home string) (string, bool) {
	candidates := []string{LocalConfig(cwd)}
	if dir := UserConfigDir(home); dir != "" {
		candidates = append(candidates, filepath.Join(dir, configFile))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// TracesFile returns ~/.config/sporthub/traces/traces.jsonl, or "" when
// the home directory is unknown.
func TracesFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(UserConfigDir(home), "traces", "traces.jsonl")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
// Paths without it, and all paths when home is unknown, are returned
// cleaned but otherwise unchanged.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
