package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/core"
)

// Cell is one composited screen position
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}

// RenderBuffer is a compositor backed by a Cell array with touched tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbPanelText, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Clone returns an independent copy of the buffer
func (b *RenderBuffer) Clone() *RenderBuffer {
	return &RenderBuffer{
		cells:   append([]Cell(nil), b.cells...),
		touched: append([]bool(nil), b.touched...),
		width:   b.width,
		height:  b.height,
	}
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground while preserving existing background
// Does not mark the cell touched
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg core.RGB, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = bold
}

// SetBgOnly updates the background while preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// FillBg paints the background of an area
func (b *RenderBuffer) FillBg(a core.Area, bg core.RGB) {
	for y := a.Y; y < a.Bottom(); y++ {
		for x := a.X; x < a.Right(); x++ {
			b.SetWithBg(x, y, ' ', RgbPanelText, bg)
		}
	}
}

// DrawText writes s starting at (x, y), clipped at maxX; returns the column after the last rune
func (b *RenderBuffer) DrawText(x, y, maxX int, s string, fg core.RGB, bold bool) int {
	for _, r := range s {
		if x >= maxX {
			break
		}
		b.SetFgOnly(x, y, r, fg, bold)
		x++
	}
	return x
}

// DrawTextCentered writes s centered within [x, x+w)
func (b *RenderBuffer) DrawTextCentered(x, y, w int, s string, fg core.RGB, bold bool) {
	n := len([]rune(s))
	start := x + max((w-n)/2, 0)
	b.DrawText(start, y, x+w, s, fg, bold)
}

// finalize sets default background to untouched cells before Flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// Flush writes the buffer to the screen; caller shows the screen
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(toColor(c.Fg)).
				Background(toColor(c.Bg)).
				Bold(c.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
