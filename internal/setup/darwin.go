package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/config"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

// HID usage IDs: 0x700000039 is Caps Lock, 0x700000029 is Escape.
const hidKeyMapping = `{"UserKeyMapping":[{"HIDKeyboardModifierMappingSrc":0x700000039,"HIDKeyboardModifierMappingDst":0x700000029}]}`

const launchAgentLabel = "com.user.capslock-escape"

const launchAgentPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>com.user.capslock-escape</string>
    <key>ProgramArguments</key>
    <array>
        <string>/usr/bin/hidutil</string>
        <string>property</string>
        <string>--set</string>
        <string>{"UserKeyMapping":[{"HIDKeyboardModifierMappingSrc":0x700000039,"HIDKeyboardModifierMappingDst":0x700000029}]}</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
</dict>
</plist>
`

type Darwin struct {
	cfg    *config.Config
	runner cmdexec.Runner
	fs     afero.Fs
	logger *log.Logger
	home   string
}

func NewDarwin(cfg *config.Config, runner cmdexec.Runner, fs afero.Fs, logger *log.Logger) *Darwin {
	return &Darwin{
		cfg:    cfg,
		runner: runner,
		fs:     fs,
		logger: logger,
		home:   os.Getenv("HOME"),
	}
}

func (m *Darwin) Name() string { return "macos" }

func (m *Darwin) Run(ctx context.Context) error {
	if !cmdexec.Exists(m.runner, "hidutil") {
		return errdefs.NewCustomError(errdefs.ErrTypeMissingTool, "hidutil not found")
	}

	if err := m.runner.Run(ctx, "hidutil", "property", "--set", hidKeyMapping); err != nil {
		return fmt.Errorf("hidutil remap failed: %w", err)
	}
	m.logger.Info("applied caps:escape HID mapping")

	plistPath := filepath.Join(m.home, "Library", "LaunchAgents", launchAgentLabel+".plist")
	if err := m.fs.MkdirAll(filepath.Dir(plistPath), 0755); err != nil {
		return fmt.Errorf("failed to create LaunchAgents directory: %w", err)
	}
	if err := afero.WriteFile(m.fs, plistPath, []byte(launchAgentPlist), 0644); err != nil {
		return fmt.Errorf("failed to write launch agent: %w", err)
	}
	m.logger.Infof("installed launch agent %s", plistPath)

	if cmdexec.Exists(m.runner, "launchctl") {
		if err := m.runner.Run(ctx, "launchctl", "load", plistPath); err != nil {
			m.logger.Infof("launchctl load: %v (agent may already be loaded)", err)
		}
	}

	dict := m.cfg.KeyBindingsDict()
	if _, err := m.fs.Stat(dict); err == nil {
		destDir := filepath.Join(m.home, "Library", "KeyBindings")
		if err := m.fs.MkdirAll(destDir, 0755); err != nil {
			return fmt.Errorf("failed to create KeyBindings directory: %w", err)
		}
		dest := filepath.Join(destDir, "DefaultKeyBinding.dict")
		if err := copyFile(m.fs, dict, dest); err != nil {
			m.logger.Warnf("could not copy key bindings: %v", err)
		} else {
			m.logger.Infof("copied key bindings to %s", dest)
		}
	}

	return nil
}
