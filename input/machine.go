package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/layout"
)

// Machine is the input state machine
// Parses tcell events into semantic Intents; never touches the engine
type Machine struct {
	keyTable *KeyTable
	layout   layout.Layout

	// Pointer gesture state
	state          GestureState
	startX, startY int

	// Guarded for renderer reads
	mu       sync.Mutex
	feedback DragFeedback
}

// NewMachine creates a new input machine with the default key table
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		state:    GestureIdle,
	}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// SetLayout updates hit-test geometry; an in-flight gesture is dropped
func (m *Machine) SetLayout(l layout.Layout) {
	m.layout = l
	m.Reset()
}

// Reset clears gesture state and drag feedback
func (m *Machine) Reset() {
	m.state = GestureIdle
	m.setFeedback(DragFeedback{})
}

// State returns the gesture state
func (m *Machine) State() GestureState {
	return m.state
}

// Feedback returns the live drag pad state
func (m *Machine) Feedback() DragFeedback {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.feedback
}

func (m *Machine) setFeedback(f DragFeedback) {
	m.mu.Lock()
	m.feedback = f
	m.mu.Unlock()
}

// Process parses one event
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok || entry.Behavior == BehaviorNone {
		return Intent{}
	}
	return Intent{Type: entry.IntentType, Dir: entry.Dir, Source: SourceKey}
}

// processMouse folds tcell's button state into press, motion and release
func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && m.state == GestureIdle:
		return m.press(x, y)
	case held:
		return m.motion(x, y)
	case m.state != GestureIdle:
		return m.release(x, y)
	}
	return Intent{}
}

func (m *Machine) press(x, y int) Intent {
	m.startX, m.startY = x, y

	if d, ok := m.layout.ButtonAt(x, y); ok {
		m.state = GestureButton
		return Intent{Type: IntentDirection, Dir: d, Source: SourceButton}
	}
	if m.layout.InDragPad(x, y) {
		m.state = GestureDrag
		m.setFeedback(DragFeedback{Active: true})
		return Intent{Type: IntentDragUpdate, Source: SourceDrag}
	}
	if m.layout.InBoard(x, y) {
		m.state = GestureSwipe
		return Intent{}
	}
	m.state = GestureIgnore
	return Intent{}
}

func (m *Machine) motion(x, y int) Intent {
	if m.state != GestureDrag {
		return Intent{}
	}
	dx, dy := CellDeltaToPoints(x-m.startX, y-m.startY)
	d, ok := Classify(dx, dy, constants.DragThreshold)
	m.setFeedback(DragFeedback{Active: true, DX: dx, DY: dy, Dir: d, HasDir: ok})
	return Intent{Type: IntentDragUpdate, Source: SourceDrag}
}

func (m *Machine) release(x, y int) Intent {
	state := m.state
	m.state = GestureIdle
	dx, dy := CellDeltaToPoints(x-m.startX, y-m.startY)

	switch state {
	case GestureSwipe:
		if d, ok := Classify(dx, dy, constants.SwipeThreshold); ok {
			return Intent{Type: IntentDirection, Dir: d, Source: SourceSwipe}
		}
	case GestureDrag:
		m.setFeedback(DragFeedback{})
		if d, ok := Classify(dx, dy, constants.DragThreshold); ok {
			return Intent{Type: IntentDirection, Dir: d, Source: SourceDrag}
		}
		// Feedback cleared without a direction
		return Intent{Type: IntentDragUpdate, Source: SourceDrag}
	}
	return Intent{}
}
