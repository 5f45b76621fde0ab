package setup

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/log"
)

// consoleKeymap maps keycode 58 (Caps Lock) to Escape on the virtual
// console.
const consoleKeymap = "keymaps 0-127\nkeycode 58 = Escape\n"

const keyboardDefaults = "/etc/default/keyboard"
const xkbOptionsLine = `XKBOPTIONS="caps:escape"`

type Console struct {
	runner cmdexec.Runner
	fs     afero.Fs
	logger *log.Logger
}

func NewConsole(runner cmdexec.Runner, fs afero.Fs, logger *log.Logger) *Console {
	return &Console{runner: runner, fs: fs, logger: logger}
}

func (c *Console) Name() string { return "console" }

func (c *Console) Run(ctx context.Context) error {
	applied := false

	if cmdexec.Exists(c.runner, "loadkeys") {
		if err := c.applyTransient(ctx); err != nil {
			c.logger.Warnf("transient keymap not applied: %v", err)
		} else {
			c.logger.Info("applied caps:escape to the current console")
			applied = true
		}
	} else {
		c.logger.Info("loadkeys not installed, skipping transient keymap")
	}

	if cmdexec.Exists(c.runner, "localectl") {
		if err := c.runner.Run(ctx, "sudo", "localectl", "set-x11-keymap", "us", "", "", "caps:escape"); err != nil {
			c.logger.Warnf("localectl failed: %v", err)
		} else {
			c.logger.Info("persisted caps:escape via localectl")
			applied = true
		}
	} else if err := c.persistKeyboardDefaults(ctx); err != nil {
		c.logger.Warnf("could not update %s: %v", keyboardDefaults, err)
	} else {
		applied = true
	}

	if !applied {
		c.logger.Info("no console keymap tool available, nothing applied")
	}
	return nil
}

func (c *Console) applyTransient(ctx context.Context) error {
	tmp, err := afero.TempFile(c.fs, "", "capsesc-keymap-*.map")
	if err != nil {
		return err
	}
	defer c.fs.Remove(tmp.Name())

	if _, err := tmp.WriteString(consoleKeymap); err != nil {
		tmp.Close()
		return err
	}
	tmp.Close()

	return c.runner.Run(ctx, "sudo", "loadkeys", tmp.Name())
}

// persistKeyboardDefaults appends the XKB options line to
// /etc/default/keyboard if it is not already there, staging the merged
// file in the temp dir and moving it into place with sudo.
func (c *Console) persistKeyboardDefaults(ctx context.Context) error {
	var content string
	if data, err := afero.ReadFile(c.fs, keyboardDefaults); err == nil {
		content = string(data)
	}

	if strings.Contains(content, xkbOptionsLine) {
		c.logger.Debugf("%s already contains %s", keyboardDefaults, xkbOptionsLine)
		return nil
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += xkbOptionsLine + "\n"

	staged := filepath.Join(os.TempDir(), "capsesc-keyboard")
	if err := afero.WriteFile(c.fs, staged, []byte(content), 0644); err != nil {
		return err
	}
	if err := c.runner.Run(ctx, "sudo", "mv", staged, keyboardDefaults); err != nil {
		return err
	}

	c.logger.Infof("appended %s to %s", xkbOptionsLine, keyboardDefaults)
	return nil
}
