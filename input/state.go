package input

// GestureState tracks the pointer gesture machine
// A gesture begins on press, and the press position decides its kind
type GestureState uint8

const (
	GestureIdle   GestureState = iota // No button held
	GestureSwipe                      // Pressed on the board, classified on release
	GestureDrag                       // Pressed on the drag pad, live feedback until release
	GestureButton                     // Pressed on a direction button, already emitted
	GestureIgnore                     // Pressed elsewhere, swallowed until release
)

func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GestureSwipe:
		return "swipe"
	case GestureDrag:
		return "drag"
	case GestureButton:
		return "button"
	case GestureIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}
