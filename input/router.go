package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/layout"
)

// Controller is the engine command surface the router drives
type Controller interface {
	Start()
	Pause()
	Reset()
	SetDirection(d engine.Direction)
	State() engine.State
}

// Router executes intents against the controller
// It never filters reversals; direction legality belongs to the engine
type Router struct {
	ctrl    Controller
	machine *Machine

	onMute     func()
	onFeedback func(DragFeedback)
	onResize   func()
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithKeyTable sets the key bindings
func WithKeyTable(kt *KeyTable) RouterOption {
	return func(r *Router) { r.machine.SetKeyTable(kt) }
}

// WithMuteHandler sets the callback for the mute key
func WithMuteHandler(fn func()) RouterOption {
	return func(r *Router) { r.onMute = fn }
}

// WithFeedbackHandler sets the callback invoked when drag feedback changes
func WithFeedbackHandler(fn func(DragFeedback)) RouterOption {
	return func(r *Router) { r.onFeedback = fn }
}

// WithResizeHandler sets the callback for terminal resize events
func WithResizeHandler(fn func()) RouterOption {
	return func(r *Router) { r.onResize = fn }
}

// NewRouter creates a router bound to ctrl
func NewRouter(ctrl Controller, l layout.Layout, opts ...RouterOption) *Router {
	r := &Router{ctrl: ctrl, machine: NewMachine()}
	r.machine.SetLayout(l)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetLayout updates hit-test geometry after a resize
func (r *Router) SetLayout(l layout.Layout) {
	r.machine.SetLayout(l)
	r.notifyFeedback()
}

// Feedback returns the live drag pad state
func (r *Router) Feedback() DragFeedback {
	return r.machine.Feedback()
}

// HandleEvent processes one tcell event
// Returns false when the host should quit
func (r *Router) HandleEvent(ev tcell.Event) bool {
	return r.Execute(r.machine.Process(ev))
}

// Execute applies an intent; returns false on quit
func (r *Router) Execute(in Intent) bool {
	switch in.Type {
	case IntentQuit:
		return false
	case IntentMute:
		if r.onMute != nil {
			r.onMute()
		}
	case IntentResize:
		if r.onResize != nil {
			r.onResize()
		}
	case IntentToggle:
		r.Toggle()
	case IntentReset:
		r.ctrl.Reset()
	case IntentDirection:
		r.ctrl.SetDirection(in.Dir)
		if in.Source == SourceDrag {
			r.notifyFeedback()
		}
	case IntentDragUpdate:
		r.notifyFeedback()
	}
	return true
}

// Toggle starts a run from Idle or Over, otherwise toggles pause
func (r *Router) Toggle() {
	switch r.ctrl.State() {
	case engine.StateIdle, engine.StateOver:
		r.ctrl.Start()
	default:
		r.ctrl.Pause()
	}
}

// HandleCommand applies a remote control command as if it came from the local surfaces
func (r *Router) HandleCommand(cmd Command) {
	switch cmd.Kind {
	case CommandDirection:
		if !cmd.Dir.Valid() {
			return
		}
		r.Execute(Intent{Type: IntentDirection, Dir: cmd.Dir, Source: SourceRemote})
	case CommandSwipe:
		if d, ok := Classify(cmd.DX, cmd.DY, constants.SwipeThreshold); ok {
			r.Execute(Intent{Type: IntentDirection, Dir: d, Source: SourceRemote})
		}
	case CommandToggle:
		r.Execute(Intent{Type: IntentToggle, Source: SourceRemote})
	case CommandReset:
		r.Execute(Intent{Type: IntentReset, Source: SourceRemote})
	default:
		log.Printf("input: unknown remote command %d", cmd.Kind)
	}
}

func (r *Router) notifyFeedback() {
	if r.onFeedback != nil {
		r.onFeedback(r.machine.Feedback())
	}
}
