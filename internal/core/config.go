package core

// RuntimeConfig is passed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means use the current time
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is what the platform needs to know about a game after each
// input: whether it ended, how, and how long it took.
type GameState struct {
	GameOver bool // Won or lost
	Won      bool
	Seconds  int // Elapsed game time
}

// StepResult is returned after the game processes an input.
type StepResult struct {
	State   GameState
	Changed bool // Whether the input changed the board
}
