// Package ambient implements a decorative splash widget: a drifting,
// twinkling starfield under a pulsing caption, with no interaction at
// all. It suits hosts that want calm motion behind a long-running
// command rather than a game.
package ambient

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-splash/internal/core"
	"github.com/vovakirdan/tui-splash/internal/registry"
)

// Scene size in character cells.
const (
	Cols = 80
	Rows = 15
)

const starCount = 36

// twinkle is the glyph cycle every star steps through.
var twinkle = [...]rune{'·', '+', '✦', '+'}

// star is a single drifting point with its own twinkle phase.
type star struct {
	x, y  int
	phase int
	drift int // Ticks per cell of leftward drift; smaller is faster
}

// Widget implements the ambient starfield.
type Widget struct {
	frame int
	stars []star
	theme core.Theme
}

// New creates a new starfield instance.
func New() *Widget {
	return &Widget{}
}

// ID returns the unique identifier for this widget.
func (w *Widget) ID() string {
	return "ambient"
}

// Title returns the display name for this widget.
func (w *Widget) Title() string {
	return "Ambient Drift"
}

// Size returns the logical scene size in character cells.
func (w *Widget) Size() (int, int) {
	return Cols, Rows
}

// Reset scatters the starfield from the seed.
func (w *Widget) Reset(cfg core.RuntimeConfig) {
	w.theme = cfg.Theme
	w.frame = 0

	rng := rand.New(rand.NewSource(cfg.Seed))
	w.stars = make([]star, 0, starCount)
	for i := 0; i < starCount; i++ {
		w.stars = append(w.stars, star{
			x:     rng.Intn(Cols),
			y:     rng.Intn(Rows - 3), // Keep the caption band clear
			phase: rng.Intn(len(twinkle)),
			drift: 16 + 8*rng.Intn(3), // Three drift planes for cheap parallax
		})
	}
}

// Step advances the animation. Input is deliberately ignored; the widget
// only ever exits through the host layer.
func (w *Widget) Step(in core.InputFrame) {
	w.frame++
}

// Render draws the starfield and the caption.
func (w *Widget) Render(dst *core.Screen) {
	dst.Clear()

	for _, s := range w.stars {
		col := s.x - w.frame/s.drift
		col = ((col % Cols) + Cols) % Cols
		glyph := twinkle[(s.phase+w.frame/12)%len(twinkle)]
		dst.SetColor(col, s.y, glyph, w.theme.Accent)
	}

	dst.DrawHLineColor(0, Rows-3, Cols, '╌', w.theme.Ground)

	dots := w.frame / 20 % 4
	caption := "warming up" + strings.Repeat(".", dots)
	dst.DrawTextCenteredColor(Rows-2, caption, w.theme.OverlayText)
}

// Register the widget with the registry
func init() {
	registry.Register("ambient", func() registry.Widget {
		return New()
	})
}
