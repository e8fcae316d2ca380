package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/core"
)

// Palette, Tokyo Night base
var (
	RgbBackground = core.RGB{R: 26, G: 27, B: 38}
	RgbGridDot    = core.RGB{R: 59, G: 66, B: 97}
	RgbBorder     = core.RGB{R: 122, G: 162, B: 247}

	RgbSnakeHead = core.RGB{R: 50, G: 255, B: 50}
	RgbSnakeTail = core.RGB{R: 0, G: 110, B: 0}
	RgbFood      = core.RGB{R: 255, G: 80, B: 80}

	RgbOverlayBg     = core.RGB{R: 20, G: 20, B: 30}
	RgbOverlayText   = core.RGB{R: 220, G: 220, B: 220}
	RgbOverlayTitle  = core.RGB{R: 255, G: 255, B: 0}
	RgbOverlayAccent = core.RGB{R: 255, G: 165, B: 0}

	RgbPanelText   = core.RGB{R: 180, G: 180, B: 180}
	RgbPanelValue  = core.RGB{R: 255, G: 255, B: 255}
	RgbButtonBg    = core.RGB{R: 65, G: 72, B: 104}
	RgbButtonHotBg = core.RGB{R: 135, G: 206, B: 250}
	RgbButtonText  = core.RGB{R: 0, G: 0, B: 0}
	RgbPadBg       = core.RGB{R: 36, G: 40, B: 59}
	RgbKnob        = core.RGB{R: 255, G: 165, B: 0}
	RgbKnobArmed   = core.RGB{R: 144, G: 238, B: 144}

	RgbStateIdle    = core.RGB{R: 135, G: 206, B: 250}
	RgbStateRunning = core.RGB{R: 144, G: 238, B: 144}
	RgbStatePaused  = core.RGB{R: 255, G: 165, B: 0}
	RgbStateOver    = core.RGB{R: 200, G: 50, B: 50}
)

// toColor converts to a tcell truecolor value
func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// bodyColor returns the gradient color for segment i of n, head bright and tail dark
func bodyColor(i, n int) core.RGB {
	return RgbSnakeHead.Gradient(RgbSnakeTail, i, n)
}
