package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/test")
	t.Setenv("DOTFILES_ROOT", "")

	cfg := Load()
	assert.Equal(t, filepath.Join("/home/test", "Work", ".dotfiles"), cfg.SharedRoot)
	assert.NotEmpty(t, cfg.RepoURL)
}

func TestLoadOverride(t *testing.T) {
	t.Setenv("DOTFILES_ROOT", "/opt/dotfiles")

	cfg := Load()
	assert.Equal(t, "/opt/dotfiles", cfg.SharedRoot)
	assert.Equal(t, filepath.Join("/opt/dotfiles", "x11", ".Xmodmap"), cfg.XmodmapSource())
	assert.Equal(t, filepath.Join("/opt/dotfiles", "keyd", "default.conf"), cfg.KeydConfig())
	assert.Equal(t, filepath.Join("/opt/dotfiles", "macos", "DefaultKeyBinding.dict"), cfg.KeyBindingsDict())
}
