package setup

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/config"
	"github.com/alamin-mahamud/capsesc/internal/envinfo"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

// Routine is one platform-specific setup procedure. Run mutates system
// state through the injected Runner and Fs; each step checks current state
// before acting so re-running is safe.
type Routine interface {
	Name() string
	Run(ctx context.Context) error
}

type Dispatcher struct {
	env    *envinfo.Snapshot
	logger *log.Logger

	newX11     func() Routine
	newConsole func() Routine
	newDarwin  func() Routine
	newWayland func() []Routine
}

func NewDispatcher(env *envinfo.Snapshot, cfg *config.Config, runner cmdexec.Runner, fs afero.Fs, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		env:    env,
		logger: logger,
		newX11: func() Routine {
			return NewX11(cfg, runner, fs, logger)
		},
		newConsole: func() Routine {
			return NewConsole(runner, fs, logger)
		},
		newDarwin: func() Routine {
			return NewDarwin(cfg, runner, fs, logger)
		},
		newWayland: func() []Routine {
			return []Routine{
				NewKeyd(cfg, runner, fs, logger),
				NewGnome(runner, logger),
				NewKDE(runner, logger),
			}
		},
	}
}

func (d *Dispatcher) Run(ctx context.Context) error {
	switch d.env.OS {
	case "linux":
		return d.runLinux(ctx)
	case "macos":
		return d.runRoutine(ctx, d.newDarwin())
	default:
		return errdefs.NewCustomError(errdefs.ErrTypeUnsupportedPlatform,
			fmt.Sprintf("unsupported platform: %s", d.env.OS))
	}
}

func (d *Dispatcher) runLinux(ctx context.Context) error {
	switch d.env.DisplayServer {
	case envinfo.DisplayX11:
		return d.runRoutine(ctx, d.newX11())
	case envinfo.DisplayWayland:
		return d.runWaylandChain(ctx)
	case envinfo.DisplayConsole:
		return d.runRoutine(ctx, d.newConsole())
	default:
		// Unrecognized display server value: run every Linux path.
		if err := d.runRoutine(ctx, d.newX11()); err != nil {
			return err
		}
		if err := d.runWaylandChain(ctx); err != nil {
			return err
		}
		return d.runRoutine(ctx, d.newConsole())
	}
}

// runWaylandChain tries the Wayland candidates in priority order and stops
// at the first success. Exhausting all candidates is not fatal; a missing
// required config file is.
func (d *Dispatcher) runWaylandChain(ctx context.Context) error {
	for _, r := range d.newWayland() {
		d.logger.Infof("trying %s setup", r.Name())
		err := r.Run(ctx)
		if err == nil {
			d.logger.Infof("%s setup complete", r.Name())
			return nil
		}
		if errdefs.IsType(err, errdefs.ErrTypeMissingConfig) {
			return err
		}
		d.logger.Warnf("%s setup skipped: %v", r.Name(), err)
	}
	d.logger.Info("no wayland remap tool available, nothing applied")
	return nil
}

func (d *Dispatcher) runRoutine(ctx context.Context, r Routine) error {
	d.logger.Infof("running %s setup", r.Name())
	if err := r.Run(ctx); err != nil {
		return err
	}
	d.logger.Infof("%s setup complete", r.Name())
	return nil
}
