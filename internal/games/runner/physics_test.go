package runner

import (
	"math"
	"testing"
)

const floatEps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatEps
}

func TestPlayerJumpImpulse(t *testing.T) {
	var p Player

	p.Jump()

	if !p.Airborne {
		t.Error("Jump should lift the player off the ground")
	}
	if p.Velocity != JumpImpulse {
		t.Errorf("Jump velocity should be %f, got %f", JumpImpulse, p.Velocity)
	}
}

func TestPlayerIntegrationOrder(t *testing.T) {
	// One tick after a jump: position moved by the full impulse first,
	// then gravity bled into the velocity.
	var p Player
	p.Jump()
	p.Tick()

	if p.Offset != -15 {
		t.Errorf("Offset after one tick should be -15, got %f", p.Offset)
	}
	if !almostEqual(p.Velocity, -14.2) {
		t.Errorf("Velocity after one tick should be -14.2, got %f", p.Velocity)
	}
}

func TestPlayerAirborneJumpIgnored(t *testing.T) {
	var p Player
	p.Jump()
	p.Tick()

	offset, vel := p.Offset, p.Velocity

	// A second jump mid-flight must change nothing
	p.Jump()

	if p.Offset != offset || p.Velocity != vel {
		t.Errorf("Airborne jump should be ignored, offset %f->%f vel %f->%f",
			offset, p.Offset, vel, p.Velocity)
	}
	if !p.Airborne {
		t.Error("Player should still be airborne")
	}
}

func TestPlayerLandingClamp(t *testing.T) {
	p := Player{Offset: -1, Velocity: 20, Airborne: true}

	p.Tick()

	if p.Offset != 0 {
		t.Errorf("Landing should clamp offset to 0, got %f", p.Offset)
	}
	if p.Velocity != 0 {
		t.Errorf("Landing should zero the velocity, got %f", p.Velocity)
	}
	if p.Airborne {
		t.Error("Player should be grounded after landing")
	}
}

func TestPlayerGroundedTickIsStable(t *testing.T) {
	var p Player

	for i := 0; i < 10; i++ {
		p.Tick()
	}

	if p.Offset != 0 || p.Velocity != 0 || p.Airborne {
		t.Errorf("Grounded player should not drift: %+v", p)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	var p Player
	p.Jump()

	minOffset := 0.0
	clearedCactus := false
	clearedBird := false

	landedAt := -1
	for tick := 1; tick <= 100; tick++ {
		p.Tick()

		r := p.Rect()
		if r.Y < 0 {
			t.Fatalf("Player left the viewport at tick %d, top %f", tick, r.Y)
		}
		if r.Bottom() > GroundY {
			t.Fatalf("Player sank below ground at tick %d, bottom %f", tick, r.Bottom())
		}

		if p.Offset < minOffset {
			minOffset = p.Offset
		}
		// Tallest cactus reaches 48 px above ground
		if r.Bottom() < GroundY-48 {
			clearedCactus = true
		}
		// The highest-hanging bird box tops out at GroundY-40
		if r.Bottom() < GroundY-40 {
			clearedBird = true
		}

		if !p.Airborne {
			landedAt = tick
			break
		}
	}

	if landedAt < 0 {
		t.Fatal("Player never landed")
	}
	if !clearedCactus {
		t.Errorf("Jump arc should clear the tallest cactus, peak offset %f", minOffset)
	}
	if !clearedBird {
		t.Errorf("Jump arc should clear every bird, peak offset %f", minOffset)
	}
	if p.Offset != 0 || p.Velocity != 0 {
		t.Errorf("Player should rest after landing: %+v", p)
	}
}

func TestPlayerRect(t *testing.T) {
	var p Player

	r := p.Rect()
	if r.X != PlayerX || r.W != PlayerSize || r.H != PlayerSize {
		t.Errorf("Resting rect = %+v", r)
	}
	if r.Y != GroundY-PlayerSize {
		t.Errorf("Resting top should be %d, got %f", GroundY-PlayerSize, r.Y)
	}
	if r.Bottom() != GroundY {
		t.Errorf("Resting bottom should sit on the ground, got %f", r.Bottom())
	}

	// Airborne rect shifts up by the offset
	p.Offset = -40
	p.Airborne = true
	r = p.Rect()
	if r.Y != float64(GroundY-PlayerSize)-40 {
		t.Errorf("Airborne top should be %f, got %f", float64(GroundY-PlayerSize)-40, r.Y)
	}
}
