package dotfiles

import (
	"context"
	"errors"
	"os"

	git "github.com/go-git/go-git/v6"

	"github.com/alamin-mahamud/capsesc/internal/config"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

// EnsureRoot makes sure the shared config root exists, cloning it on first
// run and pulling updates otherwise. Failures here are warnings only; the
// setup routines check for the exact files they need.
func EnsureRoot(ctx context.Context, cfg *config.Config, logger *log.Logger) {
	if _, err := os.Stat(cfg.SharedRoot); os.IsNotExist(err) {
		logger.Infof("cloning %s to %s", cfg.RepoURL, cfg.SharedRoot)
		if _, err := git.PlainCloneContext(ctx, cfg.SharedRoot, &git.CloneOptions{
			URL:   cfg.RepoURL,
			Depth: 1,
		}); err != nil {
			logger.Warnf("could not clone shared config: %v", err)
		}
		return
	}

	repo, err := git.PlainOpen(cfg.SharedRoot)
	if err != nil {
		// Not a git checkout, leave it alone.
		return
	}

	wt, err := repo.Worktree()
	if err != nil {
		return
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		logger.Warnf("could not update shared config: %v", err)
		return
	}
	logger.Debugf("shared config at %s is up to date", cfg.SharedRoot)
}
