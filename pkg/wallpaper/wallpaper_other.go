//go:build !linux && !darwin && !windows

package wallpaper

import (
	"context"
	"fmt"
	"runtime"
)

// Set is not supported on this platform
func (d *Desktop) Set(context.Context, string) error {
	return fmt.Errorf("wallpaper is not supported on %s", runtime.GOOS)
}
