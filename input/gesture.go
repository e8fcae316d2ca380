package input

import (
	"math"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/engine"
)

// Classify turns a pointer delta into a direction
// Returns false when both axes stay below threshold
// The larger axis wins; equal travel resolves to the vertical axis
func Classify(dx, dy, threshold float64) (engine.Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < threshold && ay < threshold {
		return 0, false
	}
	if ax > ay {
		if dx > 0 {
			return engine.Right, true
		}
		return engine.Left, true
	}
	if dy > 0 {
		return engine.Down, true
	}
	return engine.Up, true
}

// CellDeltaToPoints converts a terminal cell delta to points
func CellDeltaToPoints(dcol, drow int) (float64, float64) {
	return float64(dcol) * constants.CellWidthPoints, float64(drow) * constants.CellHeightPoints
}
