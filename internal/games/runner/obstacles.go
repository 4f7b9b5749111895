package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-splash/internal/core"
)

// Obstacle tuning, px and ticks.
const (
	ScrollSpeed   = 6.0 // Leftward world speed, px per tick
	SpawnInterval = 90  // Ticks between spawns
	AirChance     = 0.30

	GroundObstacleW = 16
	AirObstacleW    = 24
	AirObstacleH    = 16
)

// groundHeights are the cactus heights the spawner picks from, px.
var groundHeights = [...]float64{16, 32, 48}

// airOffsets are the heights of a bird's box center above the ground, px.
// All of them leave the box strictly above the ground line while still
// overlapping a grounded player, so birds always demand a jump.
var airOffsets = [...]float64{16, 24, 32}

// Kind discriminates the two obstacle families.
type Kind int

const (
	KindGround Kind = iota
	KindAir
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindAir:
		return "air"
	default:
		return "unknown"
	}
}

// Obstacle is a single scrolling hazard.
type Obstacle struct {
	X         float64 // Left edge, px
	W, H      float64 // Box size, px
	Kind      Kind
	AirOffset float64 // Box center height above the ground line (air only)
}

// Rect returns the obstacle's bounding box in viewport pixels.
// Ground obstacles rise from the ground line; air obstacles are centered
// on their vertical offset.
func (o Obstacle) Rect() core.RectF {
	if o.Kind == KindAir {
		centerY := GroundY - o.AirOffset
		return core.NewRectF(o.X, centerY-o.H/2, o.W, o.H)
	}
	return core.NewRectF(o.X, GroundY-o.H, o.W, o.H)
}

// Spawner owns the obstacle belt: it scrolls obstacles left, spawns a new
// one on a fixed tick interval, and retires the ones that leave the scene.
type Spawner struct {
	obstacles []Obstacle
	rng       *rand.Rand
	timer     int
	interval  int
}

// NewSpawner creates a spawner drawing randomness from the given source.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		interval:  SpawnInterval,
	}
}

// Reset clears all obstacles and restarts the spawn timer on a new source.
func (s *Spawner) Reset(rng *rand.Rand) {
	s.obstacles = s.obstacles[:0]
	s.rng = rng
	s.timer = 0
}

// Advance moves the belt one tick: scroll, retire, then maybe spawn.
// Returns the number of obstacles retired past the left edge this tick.
func (s *Spawner) Advance() int {
	for i := range s.obstacles {
		s.obstacles[i].X -= ScrollSpeed
	}

	removed := 0
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+o.W > 0 {
			live = append(live, o)
		} else {
			removed++
		}
	}
	s.obstacles = live

	s.timer++
	if s.timer >= s.interval {
		s.timer = 0
		s.spawn()
	}

	return removed
}

// spawn appends a new obstacle at the right viewport edge.
func (s *Spawner) spawn() {
	if s.rng.Float64() < AirChance {
		s.obstacles = append(s.obstacles, Obstacle{
			X:         ViewportW,
			W:         AirObstacleW,
			H:         AirObstacleH,
			Kind:      KindAir,
			AirOffset: airOffsets[s.rng.Intn(len(airOffsets))],
		})
		return
	}
	s.obstacles = append(s.obstacles, Obstacle{
		X:    ViewportW,
		W:    GroundObstacleW,
		H:    groundHeights[s.rng.Intn(len(groundHeights))],
		Kind: KindGround,
	})
}

// Obstacles returns the live obstacles, oldest first.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// CheckCollision tests the given box against every live obstacle.
func (s *Spawner) CheckCollision(player core.RectF) bool {
	for _, o := range s.obstacles {
		if player.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}
