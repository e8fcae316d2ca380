package engine

// Frame is an immutable snapshot of everything the board shows
// Renderers receive a fresh copy on every draw and may retain it
type Frame struct {
	GridSize int
	Snake    []Cell // head first
	Food     Cell
	HasFood  bool

	Direction Direction
	Moving    bool

	Score     int
	HighScore int
	NewHigh   bool // set on Over when this run set the record

	State State
	RunID string
	Ticks uint64
}

// Head returns the head cell, ok=false on an empty board
func (f Frame) Head() (Cell, bool) {
	if len(f.Snake) == 0 {
		return Cell{}, false
	}
	return f.Snake[0], true
}

// Renderer draws frames onto the host's surface
type Renderer interface {
	Draw(f Frame)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(f Frame)

func (fn RendererFunc) Draw(f Frame) { fn(f) }

type nopRenderer struct{}

func (nopRenderer) Draw(Frame) {}
