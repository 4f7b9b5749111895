package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-splash/internal/core"
)

func TestParseTheme(t *testing.T) {
	data := []byte(`
name: test
colors:
  ground: white
  player: bright-red
  accent: cyan
`)

	theme, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}

	if theme.Name != "test" {
		t.Errorf("Name = %q, expected %q", theme.Name, "test")
	}
	if theme.Ground != core.ColorWhite {
		t.Errorf("Ground = %d, expected ColorWhite", theme.Ground)
	}
	if theme.Player != core.ColorBrightRed {
		t.Errorf("Player = %d, expected ColorBrightRed", theme.Player)
	}
	if theme.Accent != core.ColorCyan {
		t.Errorf("Accent = %d, expected ColorCyan", theme.Accent)
	}

	// Unset entries keep the default palette
	def := core.DefaultTheme()
	if theme.Score != def.Score {
		t.Errorf("Score = %d, expected default %d", theme.Score, def.Score)
	}
	if theme.ObstacleAir != def.ObstacleAir {
		t.Errorf("ObstacleAir = %d, expected default %d", theme.ObstacleAir, def.ObstacleAir)
	}
}

func TestParseThemeUnknownColor(t *testing.T) {
	data := []byte(`
name: bad
colors:
  player: chartreuse
`)

	_, err := ParseTheme(data)
	if err == nil {
		t.Fatal("expected error for unknown color name")
	}
	if !strings.Contains(err.Error(), "chartreuse") {
		t.Errorf("error should name the bad color, got %v", err)
	}
}

func TestParseThemeInvalidYAML(t *testing.T) {
	_, err := ParseTheme([]byte("colors: [not: a: map"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadThemeFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("name: custom\ncolors:\n  ground: blue\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing temp theme failed: %v", err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme(%q) failed: %v", path, err)
	}
	if theme.Name != "custom" {
		t.Errorf("Name = %q, expected %q", theme.Name, "custom")
	}
	if theme.Ground != core.ColorBlue {
		t.Errorf("Ground = %d, expected ColorBlue", theme.Ground)
	}
}

func TestLoadThemeMissingPath(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing theme file")
	}
}

func TestLoadThemeUnknownName(t *testing.T) {
	_, err := LoadTheme("no-such-theme")
	if err == nil {
		t.Fatal("expected error for unknown theme name")
	}
}

func TestEmbeddedThemes(t *testing.T) {
	for _, name := range EmbeddedThemeNames() {
		theme, err := EmbeddedTheme(name)
		if err != nil {
			t.Errorf("EmbeddedTheme(%q) failed: %v", name, err)
		}
		if theme.Name != name {
			t.Errorf("EmbeddedTheme(%q).Name = %q", name, theme.Name)
		}
	}

	if !HasEmbeddedTheme("default") {
		t.Error("default theme should ship embedded")
	}
	if HasEmbeddedTheme("neon") {
		t.Error("unexpected embedded theme 'neon'")
	}
}

func TestLoadThemeEmptyUsesDefault(t *testing.T) {
	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme(\"\") failed: %v", err)
	}
	if theme.Name != "default" {
		t.Errorf("Name = %q, expected %q", theme.Name, "default")
	}
}
