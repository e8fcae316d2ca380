package constants

// Board Layout Constants
const (
	// TileWidth is the number of terminal columns per grid cell (keeps cells square-ish)
	TileWidth = 2

	// BoardMargin is the border thickness around the board
	BoardMargin = 1

	// PanelWidth is the side panel width holding score, buttons and the drag pad
	PanelWidth = 24

	// PanelGap separates the board from the side panel
	PanelGap = 2

	// ButtonWidth and ButtonHeight size each on-screen direction button
	ButtonWidth  = 5
	ButtonHeight = 1

	// DragPadWidth and DragPadHeight size the drag pad widget
	DragPadWidth  = 15
	DragPadHeight = 7
)

// Overlay and panel text
const (
	TextIdle        = "PRESS SPACE TO START"
	TextPaused      = "PAUSED"
	TextGameOver    = "GAME OVER"
	TextNewHigh     = "NEW HIGH SCORE!"
	TextRestartHint = "SPACE: play again"
	TextKeyHelp     = "arrows/wasd  space  r  m  q"
)

// Glyphs
const (
	GlyphEmpty    = '·'
	GlyphSnake    = '█'
	GlyphFood     = '●'
	GlyphDragKnob = '◆'
)
