package runner

import "github.com/vovakirdan/tui-splash/internal/core"

// World geometry in logical pixels. Simulation math happens in this fixed
// pixel space; only rendering quantizes it to character cells.
const (
	ViewportW = 640 // Scene width, px
	ViewportH = 240 // Scene height, px
	GroundY   = 208 // Top of the ground line, px

	PlayerX    = 48 // Player left edge, px (fixed; the world scrolls instead)
	PlayerSize = 32 // Player bounding box is square, px
)

// Vertical kinematics, px per tick.
const (
	Gravity     = 0.8
	JumpImpulse = -15.0
)

// Player holds the runner's vertical state. Position is stored as an offset
// from the resting position: 0 means grounded, negative means above it.
type Player struct {
	Offset   float64
	Velocity float64
	Airborne bool
}

// Jump applies the jump impulse. Jumping while airborne is ignored, so the
// impulse can never be re-applied mid-flight.
func (p *Player) Jump() {
	if p.Airborne {
		return
	}
	p.Velocity = JumpImpulse
	p.Airborne = true
}

// Tick advances the jump arc by one step: position integrates the current
// velocity, then gravity accelerates the velocity. Crossing the resting
// position clamps the player back onto the ground with zero velocity.
func (p *Player) Tick() {
	if !p.Airborne {
		return
	}
	p.Offset += p.Velocity
	p.Velocity += Gravity
	if p.Offset >= 0 {
		p.Offset = 0
		p.Velocity = 0
		p.Airborne = false
	}
}

// Reset returns the player to the grounded resting state.
func (p *Player) Reset() {
	*p = Player{}
}

// Rect returns the player's bounding box in viewport pixels.
func (p *Player) Rect() core.RectF {
	top := float64(GroundY-PlayerSize) + p.Offset
	return core.NewRectF(PlayerX, top, PlayerSize, PlayerSize)
}
