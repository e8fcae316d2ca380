// Package layout maps the terminal surface onto the board, side panel and input widgets
// Renderer and input router share one Layout so hit-testing matches what is drawn
package layout

import (
	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
	"github.com/lixenwraith/snake-arcade/engine"
)

// Button is an on-screen direction control
type Button struct {
	Dir  engine.Direction
	Area core.Area
}

// Layout is the geometry for one screen size
type Layout struct {
	Width, Height int
	TileWidth     int
	GridSize      int

	Frame core.Area // board including its border
	Board core.Area // cell area inside the border

	Panel   core.Area // zero when the screen is too narrow
	Buttons [4]Button
	DragPad core.Area

	// Panel rows
	ScoreRow int
	HelpRow  int
}

// Compute fits an n×n board of tileW-wide cells plus the side panel into w×h
// n is capped at maxGrid and never drops below the playable minimum
func Compute(w, h, tileW, maxGrid int) Layout {
	if tileW <= 0 {
		tileW = constants.TileWidth
	}
	if maxGrid <= 0 {
		maxGrid = constants.DefaultGridSize
	}

	l := Layout{Width: w, Height: h, TileWidth: tileW}

	border := 2 // one column/row on each side
	availW := w - 2*constants.BoardMargin - border
	withPanel := availW - constants.PanelGap - constants.PanelWidth
	availH := h - 2*constants.BoardMargin - border

	panel := withPanel/tileW >= constants.MinGridSize
	if panel {
		availW = withPanel
	}

	n := min(availW/tileW, availH, maxGrid)
	n = max(n, constants.MinGridSize)
	l.GridSize = n

	l.Frame = core.Area{
		X:      constants.BoardMargin,
		Y:      constants.BoardMargin,
		Width:  n*tileW + border,
		Height: n + border,
	}
	l.Board = l.Frame.Inset(1)

	if panel {
		l.Panel = core.Area{
			X:      l.Frame.Right() + constants.PanelGap,
			Y:      constants.BoardMargin,
			Width:  constants.PanelWidth,
			Height: max(h-2*constants.BoardMargin, 0),
		}
		l.placeWidgets()
	}
	return l
}

// placeWidgets lays out, top to bottom: title, score rows, button cross, drag pad, help
func (l *Layout) placeWidgets() {
	p := l.Panel
	l.ScoreRow = p.Y + 2

	bw, bh := constants.ButtonWidth, constants.ButtonHeight
	cx := p.X + (p.Width-bw)/2
	top := l.ScoreRow + 4

	l.Buttons = [4]Button{
		{Dir: engine.Up, Area: core.Area{X: cx, Y: top, Width: bw, Height: bh}},
		{Dir: engine.Left, Area: core.Area{X: cx - bw - 1, Y: top + bh, Width: bw, Height: bh}},
		{Dir: engine.Right, Area: core.Area{X: cx + bw + 1, Y: top + bh, Width: bw, Height: bh}},
		{Dir: engine.Down, Area: core.Area{X: cx, Y: top + 2*bh, Width: bw, Height: bh}},
	}

	l.DragPad = core.Area{
		X:      p.X + (p.Width-constants.DragPadWidth)/2,
		Y:      top + 3*bh + 1,
		Width:  constants.DragPadWidth,
		Height: constants.DragPadHeight,
	}
	l.HelpRow = l.DragPad.Bottom() + 1
}

// CellAt maps a screen position to a board cell
func (l Layout) CellAt(x, y int) (engine.Cell, bool) {
	if !l.Board.Contains(x, y) {
		return engine.Cell{}, false
	}
	return engine.Cell{X: (x - l.Board.X) / l.TileWidth, Y: y - l.Board.Y}, true
}

// CellOrigin returns the screen position of a cell's left column
func (l Layout) CellOrigin(c engine.Cell) (int, int) {
	return l.Board.X + c.X*l.TileWidth, l.Board.Y + c.Y
}

// ButtonAt returns the direction of the button under (x, y)
func (l Layout) ButtonAt(x, y int) (engine.Direction, bool) {
	if l.Panel.Empty() {
		return 0, false
	}
	for _, b := range l.Buttons {
		if b.Area.Contains(x, y) {
			return b.Dir, true
		}
	}
	return 0, false
}

// InBoard reports whether (x, y) starts a board swipe
// The border counts so swipes starting at the edge still register
func (l Layout) InBoard(x, y int) bool {
	return l.Frame.Contains(x, y)
}

// InDragPad reports whether (x, y) starts a drag
func (l Layout) InDragPad(x, y int) bool {
	return !l.Panel.Empty() && l.DragPad.Contains(x, y)
}

// FitsPanel reports whether the panel row y is on screen
func (l Layout) FitsPanel(y int) bool {
	return !l.Panel.Empty() && y < l.Panel.Bottom()
}
