// Package wallpaper sets the desktop background from an image file.
// Linux desktops are driven through their command line tools, darwin through System Events
// and windows through SystemParametersInfoW.
package wallpaper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-pkgz/lgr"
)

// runner executes an external command and returns its combined output
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Desktop sets the wallpaper of the current desktop session
type Desktop struct {
	run    runner
	getenv func(string) string
}

// New makes a Desktop for the running platform
func New() *Desktop {
	return &Desktop{run: execRun, getenv: os.Getenv}
}

// Noop accepts every path and does nothing, used for download-only mode
type Noop struct{}

// Set logs the path and returns nil
func (Noop) Set(_ context.Context, path string) error {
	lgr.Printf("[INFO] dry mode, wallpaper not changed, image at %s", path)
	return nil
}

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput() //nolint:gosec // commands are fixed per desktop
	if err != nil {
		return out, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return out, nil
}
