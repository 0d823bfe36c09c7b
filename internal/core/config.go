// Package core provides the runtime primitives shared by the game
// logic and the terminal platform: runtime configuration, abstract
// input, and the screen buffer games render into.
package core

// RuntimeConfig contains configuration passed to the game at reset.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second
	StartLevel uint32 // Level to begin at (also the generator seed)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		StartLevel: 1,
	}
}

// GameState is the game status reported to the platform after each tick.
type GameState struct {
	Score    int
	Level    uint32
	Lives    int
	GameOver bool
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
