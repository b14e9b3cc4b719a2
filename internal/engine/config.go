package engine

import "time"

// Config holds the launch parameters of one engine run.
type Config struct {
	// Seed drives every random decision of the run. Two runs with the
	// same seed and the same inputs replay identically.
	Seed int64

	// ConfigPath optionally points at a JSON file of gameplay
	// tunables.
	ConfigPath string

	// ReplayPath, when set, plays back a recorded run instead of
	// starting a live one.
	ReplayPath string

	// ReplayDir is where finished runs are recorded.
	ReplayDir string
}

// NewConfig creates a default launch config with a wall-clock seed.
func NewConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		ReplayDir: "replays",
	}
}
