package render

import (
	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/layout"
)

// boardArea returns the bordered board for an n×n frame
// n differs from the layout while a resize is deferred, the board is clipped by the buffer
func boardArea(l layout.Layout, n int) core.Area {
	if n <= 0 {
		n = l.GridSize
	}
	return core.Area{
		X:      l.Frame.X,
		Y:      l.Frame.Y,
		Width:  n*l.TileWidth + 2,
		Height: n + 2,
	}
}

func drawBoard(buf *RenderBuffer, l layout.Layout, area core.Area, f engine.Frame) {
	drawBorder(buf, area, RgbBorder)

	inner := area.Inset(1)
	origin := func(c engine.Cell) (int, int) {
		return inner.X + c.X*l.TileWidth, inner.Y + c.Y
	}

	for y := 0; y < f.GridSize; y++ {
		for x := 0; x < f.GridSize; x++ {
			sx, sy := origin(engine.Cell{X: x, Y: y})
			buf.SetFgOnly(sx, sy, constants.GlyphEmpty, RgbGridDot, false)
		}
	}

	if f.HasFood {
		sx, sy := origin(f.Food)
		buf.SetFgOnly(sx, sy, constants.GlyphFood, RgbFood, true)
	}

	n := len(f.Snake)
	for i := n - 1; i >= 0; i-- {
		sx, sy := origin(f.Snake[i])
		color := bodyColor(i, n)
		for dx := 0; dx < l.TileWidth; dx++ {
			buf.SetFgOnly(sx+dx, sy, constants.GlyphSnake, color, i == 0)
		}
	}
}

func drawBorder(buf *RenderBuffer, a core.Area, fg core.RGB) {
	if a.Width < 2 || a.Height < 2 {
		return
	}
	right, bottom := a.Right()-1, a.Bottom()-1
	for x := a.X + 1; x < right; x++ {
		buf.SetFgOnly(x, a.Y, '─', fg, false)
		buf.SetFgOnly(x, bottom, '─', fg, false)
	}
	for y := a.Y + 1; y < bottom; y++ {
		buf.SetFgOnly(a.X, y, '│', fg, false)
		buf.SetFgOnly(right, y, '│', fg, false)
	}
	buf.SetFgOnly(a.X, a.Y, '┌', fg, false)
	buf.SetFgOnly(right, a.Y, '┐', fg, false)
	buf.SetFgOnly(a.X, bottom, '└', fg, false)
	buf.SetFgOnly(right, bottom, '┘', fg, false)
}
