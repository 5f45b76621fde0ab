package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/config"
	"github.com/alamin-mahamud/capsesc/internal/dotfiles"
	"github.com/alamin-mahamud/capsesc/internal/envinfo"
	"github.com/alamin-mahamud/capsesc/internal/log"
	"github.com/alamin-mahamud/capsesc/internal/setup"
)

var rootCmd = &cobra.Command{
	Use:   "capsesc",
	Short: "Remap Caps Lock to Escape",
	Long:  "Remap Caps Lock to Escape on Linux (X11, Wayland, console) and macOS,\nusing the native mechanism for the detected environment.",
	Run:   runSetup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	printBanner()
	fmt.Printf("capsesc %s\n", Version)
}

func runSetup(cmd *cobra.Command, args []string) {
	printBanner()
	logger := log.GetLogger()

	env, err := envinfo.Detect()
	if err != nil {
		logger.Fatal(err)
	}

	logger.Infof("os: %s (%s)", env.OS, env.Architecture)
	if env.OS == "linux" {
		logger.Infof("distribution: %s", env.Distribution)
	}
	logger.Infof("display server: %s", env.DisplayServer)
	if env.WSL {
		logger.Info("running under WSL")
	}

	ctx := cmd.Context()
	cfg := config.Load()
	dotfiles.EnsureRoot(ctx, cfg, logger)

	d := setup.NewDispatcher(env, cfg, cmdexec.New(), afero.NewOsFs(), logger)
	if err := d.Run(ctx); err != nil {
		logger.Fatal(err)
	}

	logger.Info("caps lock is now escape")
	logger.Infof("session log: %s", logger.Path())
}
