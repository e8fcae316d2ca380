package persistence

import "time"

// HighScoreDTO is the serializable best-score record
type HighScoreDTO struct {
	Score     int       `toml:"score"`
	RunID     string    `toml:"run_id"`
	UpdatedAt time.Time `toml:"updated_at"`
}
