package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-splash/internal/core"
)

//go:embed defaults/default.yaml
var defaultThemeYAML []byte

//go:embed defaults/mono.yaml
var monoThemeYAML []byte

// EmbeddedTheme loads one of the themes compiled into the binary.
func EmbeddedTheme(name string) (core.Theme, error) {
	data := embeddedThemeYAML(name)
	if data == nil {
		// Fallback to hardcoded palette if the name is unknown
		return core.DefaultTheme(), nil
	}
	t, err := ParseTheme(data)
	if err != nil {
		return core.DefaultTheme(), nil // Fallback to hardcoded if embed fails
	}
	return t, nil
}

// HasEmbeddedTheme checks whether a theme of this name ships in the binary.
func HasEmbeddedTheme(name string) bool {
	return embeddedThemeYAML(name) != nil
}

// EmbeddedThemeNames lists the themes compiled into the binary.
func EmbeddedThemeNames() []string {
	return []string{"default", "mono"}
}

func embeddedThemeYAML(name string) []byte {
	switch name {
	case "default":
		return defaultThemeYAML
	case "mono":
		return monoThemeYAML
	default:
		return nil
	}
}
