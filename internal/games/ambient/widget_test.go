package ambient

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-splash/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func render(w *Widget) string {
	cols, rows := w.Size()
	screen := core.NewScreen(cols, rows)
	w.Render(screen)
	return screen.String()
}

func TestWidgetIgnoresInput(t *testing.T) {
	quiet := New()
	quiet.Reset(testConfig(5))
	noisy := New()
	noisy.Reset(testConfig(5))

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)

	for i := 0; i < 120; i++ {
		quiet.Step(core.NewInputFrame())
		noisy.Step(jump)
	}

	if render(quiet) != render(noisy) {
		t.Error("Input should have no effect on the ambient scene")
	}
}

func TestWidgetDeterminism(t *testing.T) {
	a := New()
	a.Reset(testConfig(77))
	b := New()
	b.Reset(testConfig(77))

	for i := 0; i < 300; i++ {
		a.Step(core.NewInputFrame())
		b.Step(core.NewInputFrame())
	}

	if render(a) != render(b) {
		t.Error("Same seed should produce an identical scene")
	}
}

func TestWidgetCaption(t *testing.T) {
	w := New()
	w.Reset(testConfig(1))

	if !strings.Contains(render(w), "warming up") {
		t.Error("Caption should be visible")
	}
}

func TestWidgetAnimates(t *testing.T) {
	w := New()
	w.Reset(testConfig(1))

	before := render(w)
	for i := 0; i < 100; i++ {
		w.Step(core.NewInputFrame())
	}
	after := render(w)

	if before == after {
		t.Error("Scene should change as ticks pass")
	}
}

func TestWidgetStarsStayAboveCaption(t *testing.T) {
	w := New()
	w.Reset(testConfig(9))

	cols, rows := w.Size()
	screen := core.NewScreen(cols, rows)
	for i := 0; i < 50; i++ {
		w.Step(core.NewInputFrame())
	}
	w.Render(screen)

	// The caption band holds only the separator and the caption itself
	for c := 0; c < cols; c++ {
		if screen.Get(c, rows-3) != '╌' {
			t.Fatalf("Separator row broken at col %d: %q", c, screen.Get(c, rows-3))
		}
	}
	for c := 0; c < cols; c++ {
		got := screen.Get(c, rows-1)
		if got != ' ' {
			t.Fatalf("Bottom row should stay empty, got %q at col %d", got, c)
		}
	}
}
