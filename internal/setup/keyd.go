package setup

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/config"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
	"github.com/alamin-mahamud/capsesc/internal/log"
	"github.com/alamin-mahamud/capsesc/internal/pkgmanager"
)

const keydConfigDest = "/etc/keyd/default.conf"

type Keyd struct {
	cfg    *config.Config
	runner cmdexec.Runner
	fs     afero.Fs
	logger *log.Logger
}

func NewKeyd(cfg *config.Config, runner cmdexec.Runner, fs afero.Fs, logger *log.Logger) *Keyd {
	return &Keyd{cfg: cfg, runner: runner, fs: fs, logger: logger}
}

func (k *Keyd) Name() string { return "keyd" }

func (k *Keyd) Run(ctx context.Context) error {
	source := k.cfg.KeydConfig()
	if _, err := k.fs.Stat(source); err != nil {
		return errdefs.NewCustomError(errdefs.ErrTypeMissingConfig,
			fmt.Sprintf("keyd config not found at %s", source))
	}

	if !cmdexec.Exists(k.runner, "keyd") {
		pm, err := pkgmanager.Detect(k.runner)
		if err != nil {
			return err
		}
		k.logger.Infof("installing keyd with %s", pm.Name())
		if err := pm.Install(ctx, "keyd"); err != nil {
			return fmt.Errorf("failed to install keyd: %w", err)
		}
	}

	if err := k.runner.Run(ctx, "sudo", "mkdir", "-p", "/etc/keyd"); err != nil {
		return fmt.Errorf("failed to create /etc/keyd: %w", err)
	}
	if err := k.runner.Run(ctx, "sudo", "cp", source, keydConfigDest); err != nil {
		return fmt.Errorf("failed to install keyd config: %w", err)
	}
	k.logger.Infof("installed %s to %s", source, keydConfigDest)

	if cmdexec.Exists(k.runner, "systemctl") {
		if err := k.runner.Run(ctx, "sudo", "systemctl", "enable", "keyd"); err != nil {
			return fmt.Errorf("failed to enable keyd service: %w", err)
		}
		if err := k.runner.Run(ctx, "sudo", "systemctl", "restart", "keyd"); err != nil {
			return fmt.Errorf("failed to restart keyd service: %w", err)
		}
		k.logger.Info("keyd service enabled and restarted")
	} else {
		k.logger.Info("systemctl not available, start keyd manually")
	}

	return nil
}
