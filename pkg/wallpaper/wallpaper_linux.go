//go:build linux

package wallpaper

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
)

// command is a single external call, optional ones may fail without failing Set
type command struct {
	name     string
	args     []string
	optional bool
}

// Set changes the wallpaper for the detected desktop environment
func (d *Desktop) Set(ctx context.Context, path string) error {
	desktop := d.desktop()
	lgr.Printf("[INFO] setting desktop wallpaper for %q", desktop)

	if desktop == "xfce" {
		return d.setXfce(ctx, path)
	}

	for _, c := range commands(desktop, path) {
		if _, err := d.run(ctx, c.name, c.args...); err != nil {
			if c.optional {
				lgr.Printf("[DEBUG] optional wallpaper command failed: %v", err)
				continue
			}
			return fmt.Errorf("set wallpaper on %s: %w", desktop, err)
		}
	}
	return nil
}

// desktop detects the desktop environment, lower case, empty if unknown
func (d *Desktop) desktop() string {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		// values like "ubuntu:GNOME" list several names
		for _, name := range strings.Split(d.getenv(key), ":") {
			switch name = strings.ToLower(strings.TrimSpace(name)); name {
			case "gnome", "unity", "pantheon", "budgie", "budgie-desktop", "gnome-classic":
				return "gnome"
			case "kde", "plasma", "kde-plasma":
				return "kde"
			case "x-cinnamon", "cinnamon":
				return "cinnamon"
			case "mate", "xfce", "lxde", "lxqt":
				return name
			case "xfce4", "xubuntu":
				return "xfce"
			}
		}
	}
	return ""
}

// commands builds the calls setting path as wallpaper for the desktop
func commands(desktop, path string) []command {
	uri := (&url.URL{Scheme: "file", Path: path}).String()
	switch desktop {
	case "gnome":
		return []command{
			{name: "gsettings", args: []string{"set", "org.gnome.desktop.background", "picture-uri", uri}},
			{name: "gsettings", args: []string{"set", "org.gnome.desktop.background", "picture-uri-dark", uri}, optional: true},
			{name: "gsettings", args: []string{"set", "org.gnome.desktop.background", "picture-options", "zoom"}, optional: true},
		}
	case "cinnamon":
		return []command{{name: "gsettings", args: []string{"set", "org.cinnamon.desktop.background", "picture-uri", uri}}}
	case "mate":
		return []command{{name: "gsettings", args: []string{"set", "org.mate.background", "picture-filename", path}}}
	case "kde":
		script := `var all = desktops(); for (var i = 0; i < all.length; i++) {` +
			`var d = all[i]; d.wallpaperPlugin = "org.kde.image";` +
			`d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");` +
			`d.writeConfig("Image", ` + strconv.Quote(uri) + `);}`
		return []command{{name: "qdbus", args: []string{"org.kde.plasmashell", "/PlasmaShell", "org.kde.PlasmaShell.evaluateScript", script}}}
	case "lxde", "lxqt":
		return []command{{name: "pcmanfm", args: []string{"--set-wallpaper", path, "--wallpaper-mode=crop"}}}
	default:
		return []command{{name: "feh", args: []string{"--bg-fill", path}}}
	}
}

// setXfce sets every last-image property of the xfce4-desktop channel, one per monitor and workspace
func (d *Desktop) setXfce(ctx context.Context, path string) error {
	out, err := d.run(ctx, "xfconf-query", "--channel", "xfce4-desktop", "--property", "/backdrop", "--list")
	if err != nil {
		return fmt.Errorf("list xfce backdrops: %w", err)
	}

	count := 0
	for _, prop := range strings.Split(string(out), "\n") {
		prop = strings.TrimSpace(prop)
		if !strings.HasSuffix(prop, "/last-image") {
			continue
		}
		if _, err := d.run(ctx, "xfconf-query", "--channel", "xfce4-desktop", "--property", prop, "--set", path); err != nil {
			return fmt.Errorf("set xfce backdrop %s: %w", prop, err)
		}
		count++
	}
	if count == 0 {
		return fmt.Errorf("no xfce backdrop properties found")
	}
	return nil
}
