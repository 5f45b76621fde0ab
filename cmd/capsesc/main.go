package main

import (
	"os"

	"github.com/alamin-mahamud/capsesc/internal/log"
)

var Version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// Privileged steps escalate with sudo individually.
	if os.Geteuid() == 0 {
		log.Fatal("capsesc should not be run as root. Exiting.")
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
