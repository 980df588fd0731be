package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // UI ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Moves made in the current attempt
	Hints    int  // Hints used in the current attempt
	Solved   bool // All orbs reached a goal
	Stuck    bool // No solution exists from the current position
	Replay   bool // Auto-replay is running
	GameOver bool // The attempt has ended (solved)
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Finished is set on the tick the attempt ends, so the platform records
	// it exactly once.
	Finished bool
}
