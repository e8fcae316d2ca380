// Package render draws engine frames and the control panel onto a tcell screen
package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/input"
	"github.com/lixenwraith/snake-arcade/layout"
)

// Renderer implements engine.Renderer on a tcell screen
// It keeps the last frame so input feedback and resizes repaint without an engine call
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	buf    *RenderBuffer
	layout layout.Layout

	frame    engine.Frame
	hasFrame bool
	feedback input.DragFeedback
	muted    bool
}

var _ engine.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer for the given screen geometry
func NewRenderer(screen tcell.Screen, l layout.Layout) *Renderer {
	return &Renderer{
		screen: screen,
		buf:    NewRenderBuffer(l.Width, l.Height),
		layout: l,
	}
}

// Draw stores the frame and repaints
func (r *Renderer) Draw(f engine.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frame = f
	r.hasFrame = true
	r.paintLocked()
}

// Repaint redraws the last frame
func (r *Renderer) Repaint() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paintLocked()
}

// Resize switches to a new geometry and repaints
func (r *Renderer) Resize(l layout.Layout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layout = l
	r.buf.Resize(l.Width, l.Height)
	r.paintLocked()
}

// SetDragFeedback updates the drag pad knob and repaints
func (r *Renderer) SetDragFeedback(fb input.DragFeedback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback = fb
	r.paintLocked()
}

// SetMuted updates the sound indicator and repaints
func (r *Renderer) SetMuted(muted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.muted = muted
	r.paintLocked()
}

// Frame returns the last drawn frame
func (r *Renderer) Frame() (engine.Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame, r.hasFrame
}

// Buffer returns a copy of the composited buffer of the last paint
func (r *Renderer) Buffer() *RenderBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Clone()
}

func (r *Renderer) paintLocked() {
	if w, h := r.buf.Size(); w != r.layout.Width || h != r.layout.Height {
		r.buf.Resize(r.layout.Width, r.layout.Height)
	}
	r.buf.Clear()

	f := r.frame
	if !r.hasFrame {
		f = engine.Frame{GridSize: r.layout.GridSize, State: engine.StateIdle}
	}

	board := boardArea(r.layout, f.GridSize)
	drawBoard(r.buf, r.layout, board, f)
	drawPanel(r.buf, r.layout, f, r.feedback, r.muted)
	if content := overlayFor(f); content != nil {
		drawOverlay(r.buf, board.Inset(1), content)
	}

	r.buf.Flush(r.screen)
	r.screen.Show()
}
