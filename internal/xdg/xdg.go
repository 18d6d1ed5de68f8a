// Package xdg resolves XDG Base Directory paths for the wall CLI.
//
// The config directory holds config.json; the state directory holds the
// file-backed keyring on systems without a native credential store.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under each XDG base directory.
const AppName = "wall"

// ConfigDir returns the XDG config directory for wall.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/wall when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for wall.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/wall when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func ensure(env, homeRel string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
