package core

// RuntimeConfig contains configuration passed to widgets at initialization.
// Widgets own their logical scene size, so the config carries only timing,
// the RNG seed, and the palette.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
	Theme    Theme // Palette for scene elements
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means derive from current time at startup
		Theme:    DefaultTheme(),
	}
}
