package core

// RuntimeConfig contains configuration passed to a game at initialization.
// The game surface is fixed-resolution; ScreenW/ScreenH describe the terminal
// the platform projects that surface onto.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frame ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gap placement
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

// GameState is the platform-facing summary of a game session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Frames   int  // Frames simulated since the last reset
}
