package config

import (
	"os"
	"path/filepath"
)

const defaultRepoURL = "https://github.com/alamin-mahamud/.dotfiles.git"

// Config holds the paths this run works with, computed once at startup.
type Config struct {
	// SharedRoot is the dotfiles checkout holding the keyboard configs.
	SharedRoot string
	// RepoURL is where SharedRoot is cloned from when missing.
	RepoURL string
}

func Load() *Config {
	root := os.Getenv("DOTFILES_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.Getenv("HOME")
		}
		root = filepath.Join(home, "Work", ".dotfiles")
	}
	return &Config{
		SharedRoot: root,
		RepoURL:    defaultRepoURL,
	}
}

// XmodmapSource is the shared X11 keymap config.
func (c *Config) XmodmapSource() string {
	return filepath.Join(c.SharedRoot, "x11", ".Xmodmap")
}

// KeydConfig is the shared keyd daemon config.
func (c *Config) KeydConfig() string {
	return filepath.Join(c.SharedRoot, "keyd", "default.conf")
}

// KeyBindingsDict is the optional macOS key-binding dictionary.
func (c *Config) KeyBindingsDict() string {
	return filepath.Join(c.SharedRoot, "macos", "DefaultKeyBinding.dict")
}
