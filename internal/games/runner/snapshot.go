package runner

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Frame     int
	Score     int
	State     SessionState
	Offset    float64
	Velocity  float64
	Airborne  bool
	Obstacles int
	FirstX    float64 // X of the oldest live obstacle, 0 when none
}

// Snapshot returns the current session snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	firstX := 0.0
	if obs := g.spawner.Obstacles(); len(obs) > 0 {
		firstX = obs[0].X
	}

	return Snapshot{
		Frame:     g.frame,
		Score:     g.score,
		State:     g.state,
		Offset:    g.player.Offset,
		Velocity:  g.player.Velocity,
		Airborne:  g.player.Airborne,
		Obstacles: len(g.spawner.Obstacles()),
		FirstX:    firstX,
	}
}
