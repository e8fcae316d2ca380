package constants

// Grid Constants
const (
	// DefaultGridSize is the board side in cells (400px canvas / 20px tile)
	DefaultGridSize = 20

	// MinGridSize is the smallest playable board; smaller terminals clamp to it
	MinGridSize = 5

	// MaxGridSize bounds the -grid flag
	MaxGridSize = 60
)

// Scoring Constants
const (
	// FoodScore is awarded per food consumed
	FoodScore = 10
)

// Persistence Constants
const (
	// HighScoreKey names the single persisted best-score entry
	HighScoreKey = "snakeHighScore"

	// DefaultDataDir is where persisted entries live unless -data overrides it
	DefaultDataDir = "data"
)
