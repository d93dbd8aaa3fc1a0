package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    uint64 // Current score
	MaxTile  uint64 // Highest tile face on the board
	GameOver bool   // No move can change the board
	Quit     bool   // Player confirmed they want to leave
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Moved     bool // A directional move changed the board this tick
	Restarted bool // A new round started this tick
}
