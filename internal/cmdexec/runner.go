package cmdexec

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts the external tools this program shells out to, so the
// fatal/optional distinction and idempotence checks can be tested without
// touching the real system.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

type execRunner struct{}

// New returns a Runner backed by os/exec.
func New() Runner {
	return &execRunner{}
}

func (e *execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		out := strings.TrimSpace(string(output))
		if out != "" {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, out)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func (e *execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (e *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Exists reports whether a command is available on PATH.
func Exists(r Runner, name string) bool {
	_, err := r.LookPath(name)
	return err == nil
}
