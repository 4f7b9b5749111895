// Package config loads color themes for the splash scenes.
// Themes are small YAML palettes mapping scene elements to terminal colors;
// they can ship embedded in the binary or live in user files.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-splash/internal/core"
)

// colorNames maps the color words accepted in theme files to screen colors.
var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright-red":     core.ColorBrightRed,
	"bright-green":   core.ColorBrightGreen,
	"bright-yellow":  core.ColorBrightYellow,
	"bright-blue":    core.ColorBrightBlue,
	"bright-magenta": core.ColorBrightMagenta,
	"bright-cyan":    core.ColorBrightCyan,
	"bright-white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// ThemeFile is the YAML shape of a theme on disk.
// Empty color entries fall back to the built-in default palette.
type ThemeFile struct {
	Name   string   `yaml:"name"`
	Colors ColorMap `yaml:"colors"`
}

// ColorMap names a color for each scene element.
type ColorMap struct {
	Ground         string `yaml:"ground"`
	Player         string `yaml:"player"`
	ObstacleGround string `yaml:"obstacle_ground"`
	ObstacleAir    string `yaml:"obstacle_air"`
	Score          string `yaml:"score"`
	OverlayTitle   string `yaml:"overlay_title"`
	OverlayText    string `yaml:"overlay_text"`
	Accent         string `yaml:"accent"`
}

// Theme resolves the file into a usable palette, merging over the defaults.
func (f ThemeFile) Theme() (core.Theme, error) {
	t := core.DefaultTheme()
	if f.Name != "" {
		t.Name = f.Name
	}

	entries := []struct {
		field string
		name  string
		dst   *core.Color
	}{
		{"ground", f.Colors.Ground, &t.Ground},
		{"player", f.Colors.Player, &t.Player},
		{"obstacle_ground", f.Colors.ObstacleGround, &t.ObstacleGround},
		{"obstacle_air", f.Colors.ObstacleAir, &t.ObstacleAir},
		{"score", f.Colors.Score, &t.Score},
		{"overlay_title", f.Colors.OverlayTitle, &t.OverlayTitle},
		{"overlay_text", f.Colors.OverlayText, &t.OverlayText},
		{"accent", f.Colors.Accent, &t.Accent},
	}

	for _, e := range entries {
		if e.name == "" {
			continue
		}
		c, ok := colorNames[e.name]
		if !ok {
			return t, fmt.Errorf("config: unknown color %q for %s", e.name, e.field)
		}
		*e.dst = c
	}

	return t, nil
}
