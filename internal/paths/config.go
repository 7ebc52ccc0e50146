// Package paths resolves where textdiff keeps its files.
package paths

import (
	"os"
	"path/filepath"
)

// AppName names the per-user and per-project directories.
const AppName = "textdiff"

// ProjectConfigFile is the project-local config path, relative to the
// working directory.
func ProjectConfigFile() string {
	return filepath.Join("."+AppName, "config.yaml")
}

// UserConfigDir returns ~/.config/textdiff, or "" if the home directory is
// unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// UserConfigFile returns ~/.config/textdiff/config.yaml, or "" if the home
// directory is unavailable.
func UserConfigFile() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// ResolveConfigFile picks the config file to load.
//
// Lookup order:
//   - explicit, when non-empty, even if it does not exist
//   - .textdiff/config.yaml in the working directory
//   - ~/.config/textdiff/config.yaml
//
// Returns "" when no config file exists.
func ResolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range []string{ProjectConfigFile(), UserConfigFile()} {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
