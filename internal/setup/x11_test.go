package setup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/config"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

func x11Fixture(t *testing.T) (*config.Config, string) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DISPLAY", "")

	root := filepath.Join(home, "dotfiles")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "x11"), 0755))
	source := filepath.Join(root, "x11", ".Xmodmap")
	require.NoError(t, os.WriteFile(source, []byte("remove Lock = Caps_Lock\n"), 0644))

	return &config.Config{SharedRoot: root}, home
}

func TestX11MissingConfigIsFatal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &config.Config{SharedRoot: filepath.Join(home, "nowhere")}
	x := NewX11(cfg, cmdexec.NewFake(), afero.NewOsFs(), log.GetLogger())

	err := x.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeMissingConfig))

	// No mutation before the fatal check.
	_, err = os.Lstat(filepath.Join(home, ".Xmodmap"))
	assert.True(t, os.IsNotExist(err))
}

func TestX11SymlinkCreation(t *testing.T) {
	cfg, home := x11Fixture(t)
	x := NewX11(cfg, cmdexec.NewFake(), afero.NewOsFs(), log.GetLogger())

	require.NoError(t, x.Run(context.Background()))

	target := filepath.Join(home, ".Xmodmap")
	fi, err := os.Lstat(target)
	require.NoError(t, err)
	assert.NotZero(t, fi.Mode()&os.ModeSymlink)

	dest, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, cfg.XmodmapSource(), dest)
}

func TestX11BacksUpExistingFile(t *testing.T) {
	cfg, home := x11Fixture(t)

	target := filepath.Join(home, ".Xmodmap")
	existing := "! my old mappings\n"
	require.NoError(t, os.WriteFile(target, []byte(existing), 0644))

	x := NewX11(cfg, cmdexec.NewFake(), afero.NewOsFs(), log.GetLogger())
	require.NoError(t, x.Run(context.Background()))

	backup, err := os.ReadFile(target + ".backup")
	require.NoError(t, err)
	assert.Equal(t, existing, string(backup))

	fi, err := os.Lstat(target)
	require.NoError(t, err)
	assert.NotZero(t, fi.Mode()&os.ModeSymlink)
}

func TestX11Idempotent(t *testing.T) {
	cfg, home := x11Fixture(t)

	rcPath := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("export EDITOR=vim\n"), 0644))

	x := NewX11(cfg, cmdexec.NewFake(), afero.NewOsFs(), log.GetLogger())
	require.NoError(t, x.Run(context.Background()))
	require.NoError(t, x.Run(context.Background()))

	// Activation line appended exactly once.
	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), xmodmapActivation))

	// A second run over an existing symlink creates no backup.
	_, err = os.Stat(filepath.Join(home, ".Xmodmap.backup"))
	assert.True(t, os.IsNotExist(err))
}

func TestX11SkipsMissingRCFiles(t *testing.T) {
	cfg, home := x11Fixture(t)

	x := NewX11(cfg, cmdexec.NewFake(), afero.NewOsFs(), log.GetLogger())
	require.NoError(t, x.Run(context.Background()))

	_, err := os.Stat(filepath.Join(home, ".bashrc"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(home, ".zshrc"))
	assert.True(t, os.IsNotExist(err))
}

func TestX11AppliesToLiveSession(t *testing.T) {
	cfg, home := x11Fixture(t)
	t.Setenv("DISPLAY", ":0")

	fake := cmdexec.NewFake("xmodmap")
	x := NewX11(cfg, fake, afero.NewOsFs(), log.GetLogger())
	require.NoError(t, x.Run(context.Background()))

	assert.True(t, fake.CalledWith("xmodmap", filepath.Join(home, ".Xmodmap")))
}
