package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frame callbacks per second (default 60)
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

// GameState is the summary a game reports to the platform after each frame.
type GameState struct {
	Score    int
	Lives    int
	InMenu   bool
	GameOver bool
	Paused   bool
	Stopped  bool // No further frames will be simulated
}

// StepResult is returned by Game.Frame after each frame.
type StepResult struct {
	State GameState
	DtMs  float64 // Effective delta used for integration, after clamping
}

// RunResult describes a finished run. Games hand it to the platform, which
// decides whether and where to persist it.
type RunResult struct {
	RunID        string
	GameID       string
	Seed         int64
	Score        int
	Level        int
	Kills        int
	DurationMs   float64
	NewHighScore bool
}
