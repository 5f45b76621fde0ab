package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/config"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

// xmodmapActivation is the line appended to shell startup files so the
// mapping survives new X sessions.
const xmodmapActivation = `[ -f ~/.Xmodmap ] && xmodmap ~/.Xmodmap`

type X11 struct {
	cfg    *config.Config
	runner cmdexec.Runner
	fs     afero.Fs
	logger *log.Logger
	home   string
}

func NewX11(cfg *config.Config, runner cmdexec.Runner, fs afero.Fs, logger *log.Logger) *X11 {
	return &X11{
		cfg:    cfg,
		runner: runner,
		fs:     fs,
		logger: logger,
		home:   os.Getenv("HOME"),
	}
}

func (x *X11) Name() string { return "x11" }

func (x *X11) Run(ctx context.Context) error {
	source := x.cfg.XmodmapSource()
	if _, err := x.fs.Stat(source); err != nil {
		return errdefs.NewCustomError(errdefs.ErrTypeMissingConfig,
			fmt.Sprintf("xmodmap config not found at %s", source))
	}

	target := filepath.Join(x.home, ".Xmodmap")
	if err := x.linkConfig(source, target); err != nil {
		return err
	}

	if os.Getenv("DISPLAY") != "" {
		if cmdexec.Exists(x.runner, "xmodmap") {
			if err := x.runner.Run(ctx, "xmodmap", target); err != nil {
				x.logger.Warnf("could not apply xmodmap: %v", err)
			} else {
				x.logger.Info("applied caps:escape to the running X session")
			}
		} else {
			x.logger.Info("xmodmap not installed, mapping takes effect on next login")
		}
	}

	for _, rc := range []string{".bashrc", ".zshrc"} {
		if err := x.appendActivation(filepath.Join(x.home, rc)); err != nil {
			x.logger.Warnf("could not update %s: %v", rc, err)
		}
	}

	return nil
}

// linkConfig points target at source, backing up a pre-existing regular
// file first. An already-correct symlink is left alone.
func (x *X11) linkConfig(source, target string) error {
	linker, ok := x.fs.(afero.Symlinker)
	if !ok {
		return errdefs.NewCustomError(errdefs.ErrTypeGeneric,
			"filesystem does not support symlinks")
	}

	if existing, err := readlink(x.fs, target); err == nil {
		if existing == source {
			x.logger.Infof("%s already links to %s", target, source)
			return nil
		}
		if err := x.fs.Remove(target); err != nil {
			return fmt.Errorf("failed to remove stale symlink %s: %w", target, err)
		}
	} else if _, err := lstat(x.fs, target); err == nil {
		backup := target + ".backup"
		if err := copyFile(x.fs, target, backup); err != nil {
			return fmt.Errorf("failed to back up %s: %w", target, err)
		}
		x.logger.Infof("backed up existing %s to %s", target, backup)
		if err := x.fs.Remove(target); err != nil {
			return fmt.Errorf("failed to remove %s: %w", target, err)
		}
	}

	if err := linker.SymlinkIfPossible(source, target); err != nil {
		return fmt.Errorf("failed to create symlink %s: %w", target, err)
	}
	x.logger.Infof("linked %s to %s", target, source)
	return nil
}

func (x *X11) appendActivation(rcPath string) error {
	data, err := afero.ReadFile(x.fs, rcPath)
	if err != nil {
		if os.IsNotExist(err) {
			x.logger.Debugf("%s not present, skipping", filepath.Base(rcPath))
			return nil
		}
		return err
	}

	if strings.Contains(string(data), xmodmapActivation) {
		return nil
	}

	f, err := x.fs.OpenFile(rcPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + xmodmapActivation + "\n"); err != nil {
		return err
	}
	x.logger.Infof("added xmodmap activation to %s", rcPath)
	return nil
}
