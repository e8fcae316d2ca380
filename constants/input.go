package constants

// Gesture Thresholds (points, the pixel-equivalent unit of the board surface)
const (
	// SwipeThreshold is the minimum travel on either axis for a board swipe
	SwipeThreshold = 30.0

	// DragThreshold is the minimum travel on either axis for a drag pad gesture
	DragThreshold = 20.0
)

// Terminal cell metrics used to convert cell deltas into points
// 8x16 matches the common VGA-derived terminal font cell
const (
	CellWidthPoints  = 8.0
	CellHeightPoints = 16.0
)
