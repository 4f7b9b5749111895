// Package runner implements the endless runner splash widget: a fixed
// 640x240 pixel scene where the player jumps over scrolling obstacles
// while the host command does its work. Everything advances on a fixed
// tick, so a whole session is reproducible from its seed.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-splash/internal/core"
	"github.com/vovakirdan/tui-splash/internal/registry"
)

// ScoreBonusTicks is how many running ticks earn one survival point.
// Cleared obstacles are worth one point each on top of that.
const ScoreBonusTicks = 12

// SessionState tracks where a play session is in its lifecycle.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game implements the runner widget logic.
type Game struct {
	player  Player
	spawner *Spawner
	state   SessionState
	score   int
	frame   int // Ticks elapsed in the current run
	seed    int64
	runs    int // Completed restarts, used to vary the spawn seed per run
	theme   core.Theme
}

// New creates a new runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this widget.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this widget.
func (g *Game) Title() string {
	return "Warm-up Runner"
}

// Size returns the logical scene size in character cells.
func (g *Game) Size() (int, int) {
	return ViewportW / cellW, ViewportH / cellH
}

// Reset initializes a fresh session in the Idle state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.theme = cfg.Theme
	g.seed = cfg.Seed
	g.runs = 0
	g.state = StateIdle
	g.score = 0
	g.frame = 0
	g.player.Reset()

	rng := rand.New(rand.NewSource(cfg.Seed))
	if g.spawner == nil {
		g.spawner = NewSpawner(rng)
	} else {
		g.spawner.Reset(rng)
	}
}

// Step advances the session by one tick. The jump action doubles as the
// start control in Idle and the retry control after a collision; while
// Idle or after a collision the simulation itself stands still.
func (g *Game) Step(in core.InputFrame) {
	switch g.state {
	case StateIdle:
		if in.Has(core.ActionJump) {
			g.state = StateRunning
			g.player.Jump()
		}
	case StateRunning:
		g.advance(in)
	case StateGameOver:
		if in.Has(core.ActionJump) {
			g.restart()
		}
	}
}

// advance runs one simulation tick: input, physics, world scroll,
// collision, then scoring. Scoring still settles on the tick that ends
// the run; the scene freezes starting with the next tick.
func (g *Game) advance(in core.InputFrame) {
	g.frame++

	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	g.player.Tick()

	removed := g.spawner.Advance()

	if g.spawner.CheckCollision(g.player.Rect()) {
		g.state = StateGameOver
	}

	g.score += removed
	if g.frame%ScoreBonusTicks == 0 {
		g.score++
	}
}

// restart begins a new run directly, skipping Idle. Each run reseeds the
// spawner from the session seed plus the run count, so retries see a
// fresh layout while the session stays reproducible end to end.
func (g *Game) restart() {
	g.runs++
	g.score = 0
	g.frame = 0
	g.player.Reset()
	g.spawner.Reset(rand.New(rand.NewSource(g.seed + int64(g.runs))))
	g.state = StateRunning
}

// State returns the current lifecycle state.
func (g *Game) State() SessionState {
	return g.state
}

// Score returns the score of the current run.
func (g *Game) Score() int {
	return g.score
}

// Register the widget with the registry
func init() {
	registry.Register("runner", func() registry.Widget {
		return New()
	})
}
