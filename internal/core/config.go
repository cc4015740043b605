package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
type GameState struct {
	Score    int  // Current score
	Distance int  // Distance traveled, in world units
	Gems     int  // Gems collected this run
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game clock is paused
}

// StepResult is returned by the game after each simulation frame.
type StepResult struct {
	State GameState
}
