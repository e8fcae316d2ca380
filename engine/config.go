package engine

import (
	"time"

	"github.com/lixenwraith/snake-arcade/constants"
)

// Config holds per-engine settings fixed at construction
type Config struct {
	GridSize     int           // board side in cells
	TickInterval time.Duration // step period, constant within a run
	Seed         uint64        // food placement seed, 0 = time based
}

// DefaultConfig returns the reference settings: 20×20 board, 200ms steps
func DefaultConfig() Config {
	return Config{
		GridSize:     constants.DefaultGridSize,
		TickInterval: constants.GameUpdateInterval,
	}
}

func (c Config) normalized() Config {
	if c.GridSize <= 0 {
		c.GridSize = constants.DefaultGridSize
	}
	if c.TickInterval <= 0 {
		c.TickInterval = constants.GameUpdateInterval
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	return c
}
