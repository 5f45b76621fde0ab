package setup

import (
	"context"
	"fmt"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

type KDE struct {
	runner cmdexec.Runner
	logger *log.Logger
}

func NewKDE(runner cmdexec.Runner, logger *log.Logger) *KDE {
	return &KDE{runner: runner, logger: logger}
}

func (k *KDE) Name() string { return "kde" }

func (k *KDE) Run(ctx context.Context) error {
	if !cmdexec.Exists(k.runner, "kwriteconfig5") {
		return errdefs.NewCustomError(errdefs.ErrTypeMissingTool, "kwriteconfig5 not installed")
	}

	err := k.runner.Run(ctx, "kwriteconfig5",
		"--file", "kxkbrc", "--group", "Layout", "--key", "Options", "caps:escape")
	if err != nil {
		return fmt.Errorf("kwriteconfig5 failed: %w", err)
	}
	k.logger.Info("set caps:escape in kxkbrc")

	// Reload the layout in the running session when possible.
	if cmdexec.Exists(k.runner, "qdbus") {
		if err := k.runner.Run(ctx, "qdbus", "org.kde.keyboard", "/Layouts", "reloadConfig"); err != nil {
			k.logger.Debugf("keyboard layout reload failed: %v", err)
		}
	}

	return nil
}
