package pkgmanager

import (
	"context"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
)

type PackageManager interface {
	Name() string
	Install(ctx context.Context, packages ...string) error
}

var probeOrder = []string{"pacman", "dnf", "apt-get"}

// Detect returns the first supported package manager found on PATH.
func Detect(r cmdexec.Runner) (PackageManager, error) {
	for _, name := range probeOrder {
		if !cmdexec.Exists(r, name) {
			continue
		}
		switch name {
		case "pacman":
			return &pacman{runner: r}, nil
		case "dnf":
			return &dnf{runner: r}, nil
		case "apt-get":
			return &aptGet{runner: r}, nil
		}
	}
	return nil, errdefs.NewCustomError(errdefs.ErrTypeMissingTool,
		"no supported package manager found (tried pacman, dnf, apt-get)")
}

type pacman struct {
	runner cmdexec.Runner
}

func (p *pacman) Name() string { return "pacman" }

func (p *pacman) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"pacman", "-S", "--needed", "--noconfirm"}, packages...)
	return p.runner.Run(ctx, "sudo", args...)
}

type dnf struct {
	runner cmdexec.Runner
}

func (d *dnf) Name() string { return "dnf" }

func (d *dnf) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"dnf", "install", "-y"}, packages...)
	return d.runner.Run(ctx, "sudo", args...)
}

type aptGet struct {
	runner cmdexec.Runner
}

func (a *aptGet) Name() string { return "apt-get" }

func (a *aptGet) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"apt-get", "install", "-y"}, packages...)
	return a.runner.Run(ctx, "sudo", args...)
}
