package dotfiles

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alamin-mahamud/capsesc/internal/config"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

func TestEnsureRootCloneFailureIsNonFatal(t *testing.T) {
	root := filepath.Join(t.TempDir(), "dotfiles")
	cfg := &config.Config{
		SharedRoot: root,
		RepoURL:    "file:///nonexistent/repo.git",
	}

	EnsureRoot(context.Background(), cfg, log.GetLogger())

	// Nothing left behind on a failed clone.
	_, err := os.Stat(filepath.Join(root, ".git"))
	assert.True(t, os.IsNotExist(err))
}

func TestEnsureRootLeavesPlainDirectoryAlone(t *testing.T) {
	root := t.TempDir()
	marker := filepath.Join(root, "x11")
	require.NoError(t, os.MkdirAll(marker, 0755))

	cfg := &config.Config{SharedRoot: root}
	EnsureRoot(context.Background(), cfg, log.GetLogger())

	_, err := os.Stat(marker)
	assert.NoError(t, err)
}

func TestEnsureRootPullsExistingCheckout(t *testing.T) {
	// A local repo with no remote makes the pull fail, which EnsureRoot
	// treats as a warning.
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	cfg := &config.Config{SharedRoot: root}
	EnsureRoot(context.Background(), cfg, log.GetLogger())

	_, err = os.Stat(filepath.Join(root, ".git"))
	assert.NoError(t, err)
}
