//go:build darwin

package wallpaper

import (
	"context"
	"fmt"
	"strconv"
)

// Set changes the picture of every desktop through System Events
func (d *Desktop) Set(ctx context.Context, path string) error {
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(path)
	if _, err := d.run(ctx, "osascript", "-e", script); err != nil {
		return fmt.Errorf("set wallpaper: %w", err)
	}
	return nil
}
