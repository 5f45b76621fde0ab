package setup

import (
	"context"
	"fmt"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

type Gnome struct {
	runner cmdexec.Runner
	logger *log.Logger
}

func NewGnome(runner cmdexec.Runner, logger *log.Logger) *Gnome {
	return &Gnome{runner: runner, logger: logger}
}

func (g *Gnome) Name() string { return "gnome" }

func (g *Gnome) Run(ctx context.Context) error {
	if !cmdexec.Exists(g.runner, "gsettings") {
		return errdefs.NewCustomError(errdefs.ErrTypeMissingTool, "gsettings not installed")
	}

	err := g.runner.Run(ctx, "gsettings", "set",
		"org.gnome.desktop.input-sources", "xkb-options", `['caps:escape']`)
	if err != nil {
		return fmt.Errorf("gsettings failed: %w", err)
	}

	g.logger.Info("set caps:escape via gsettings")
	return nil
}
