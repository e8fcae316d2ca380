package input

import "github.com/lixenwraith/snake-arcade/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentMute   // m
	IntentResize // Terminal resize event

	// Game control
	IntentToggle    // space: start when Idle/Over, else pause toggle
	IntentReset     // r
	IntentDirection // arrows, wasd, swipe, drag release, buttons

	// Drag pad feedback changed, no game effect
	IntentDragUpdate
)

// Source identifies which input surface produced an intent
type Source uint8

const (
	SourceKey Source = iota
	SourceSwipe
	SourceDrag
	SourceButton
	SourceRemote
)

func (s Source) String() string {
	switch s {
	case SourceKey:
		return "key"
	case SourceSwipe:
		return "swipe"
	case SourceDrag:
		return "drag"
	case SourceButton:
		return "button"
	case SourceRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Intent represents a parsed semantic action
// Pure data struct with no function pointers or engine state
type Intent struct {
	Type   IntentType
	Dir    engine.Direction // valid when Type == IntentDirection
	Source Source
}

// DragFeedback is the live state of a drag pad gesture
type DragFeedback struct {
	Active bool
	DX, DY float64 // travel in points
	Dir    engine.Direction
	HasDir bool // travel passed the drag threshold
}

// CommandKind enumerates remote control messages
type CommandKind uint8

const (
	CommandDirection CommandKind = iota // on-screen button equivalent
	CommandSwipe                        // raw swipe deltas in points
	CommandToggle
	CommandReset
)

// Command is a remote control message already decoded by the feed
type Command struct {
	Kind   CommandKind
	Dir    engine.Direction
	DX, DY float64
}
