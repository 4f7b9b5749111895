package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-splash/internal/core"
)

// LoadTheme resolves a theme by name or by file path.
//
// A value containing a path separator or a .yaml/.yml extension is treated
// as an explicit file path and must load cleanly. Otherwise the value is a
// theme name and the search order is:
// ~/.splash/themes/<name>.yaml -> ./themes/<name>.yaml -> embedded <name>.
// An empty value loads the embedded default theme.
func LoadTheme(nameOrPath string) (core.Theme, error) {
	if nameOrPath == "" {
		return EmbeddedTheme("default")
	}

	if isPath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath)
		if err != nil {
			return core.DefaultTheme(), fmt.Errorf("failed to read theme %s: %w", nameOrPath, err)
		}
		return ParseTheme(data)
	}

	filename := nameOrPath + ".yaml"

	// Try user theme directory
	if userPath := userThemePath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return ParseTheme(data)
		}
	}

	// Try local themes directory
	if data, err := os.ReadFile(filepath.Join("themes", filename)); err == nil {
		return ParseTheme(data)
	}

	// Fall back to an embedded theme of that name
	if HasEmbeddedTheme(nameOrPath) {
		return EmbeddedTheme(nameOrPath)
	}

	return core.DefaultTheme(), fmt.Errorf("config: unknown theme %q", nameOrPath)
}

// ParseTheme decodes YAML theme data into a palette.
func ParseTheme(data []byte) (core.Theme, error) {
	var f ThemeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return core.DefaultTheme(), fmt.Errorf("failed to parse theme: %w", err)
	}
	return f.Theme()
}

// isPath reports whether the value names a file rather than a theme.
func isPath(v string) bool {
	if strings.ContainsRune(v, os.PathSeparator) || strings.ContainsRune(v, '/') {
		return true
	}
	ext := filepath.Ext(v)
	return ext == ".yaml" || ext == ".yml"
}

// userThemePath returns the path to a user theme file, or empty if home is unavailable.
func userThemePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".splash", "themes", filename)
}
