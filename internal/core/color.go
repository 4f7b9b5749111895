package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Theme assigns a color to each element of a splash scene. Widgets receive
// a Theme through RuntimeConfig and look up their elements by field; they
// never hard-code colors so palettes can be swapped from configuration.
type Theme struct {
	Name           string
	Ground         Color
	Player         Color
	ObstacleGround Color
	ObstacleAir    Color
	Score          Color
	OverlayTitle   Color
	OverlayText    Color
	Accent         Color
}

// DefaultTheme returns the built-in palette used when no theme is configured.
func DefaultTheme() Theme {
	return Theme{
		Name:           "default",
		Ground:         ColorGray,
		Player:         ColorBrightWhite,
		ObstacleGround: ColorBrightGreen,
		ObstacleAir:    ColorBrightYellow,
		Score:          ColorWhite,
		OverlayTitle:   ColorBrightWhite,
		OverlayText:    ColorGray,
		Accent:         ColorBrightCyan,
	}
}
