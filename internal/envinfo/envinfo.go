package envinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/alamin-mahamud/capsesc/internal/errdefs"
)

type DisplayServer string

const (
	DisplayX11     DisplayServer = "x11"
	DisplayWayland DisplayServer = "wayland"
	DisplayConsole DisplayServer = "console"
)

// Snapshot describes the runtime environment, taken once at startup and
// immutable for the run.
type Snapshot struct {
	OS            string
	DisplayServer DisplayServer
	Distribution  string
	PrettyName    string
	Architecture  string
	WSL           bool
}

var getOsFunc = getGoos
var getArchFunc = getGoarch
var getEnvFunc = os.Getenv

func getGoos() string {
	return runtime.GOOS
}

func getGoarch() string {
	return runtime.GOARCH
}

func Detect() (*Snapshot, error) {
	info := &Snapshot{
		Architecture: getArchFunc(),
	}

	switch getOsFunc() {
	case "linux":
		info.OS = "linux"
	case "darwin":
		info.OS = "macos"
	default:
		return nil, errdefs.NewCustomError(errdefs.ErrTypeUnsupportedPlatform,
			fmt.Sprintf("unsupported platform: %s", getOsFunc()))
	}

	info.DisplayServer = detectDisplayServer()

	if info.OS == "linux" {
		if err := readOSRelease(info); err != nil {
			info.Distribution = "unknown"
		}
		info.WSL = detectWSL()
	} else {
		info.Distribution = "none"
	}

	return info, nil
}

func detectDisplayServer() DisplayServer {
	if getEnvFunc("WAYLAND_DISPLAY") != "" {
		return DisplayWayland
	}
	if getEnvFunc("DISPLAY") != "" {
		return DisplayX11
	}
	return DisplayConsole
}
