package events

// GameStartedPayload identifies the new run
type GameStartedPayload struct {
	RunID    string
	GridSize int
}

// StateChangedPayload carries state names so consumers stay engine-agnostic
type StateChangedPayload struct {
	From string
	To   string
}

// FoodEatenPayload contains the consumed cell and the resulting body length
type FoodEatenPayload struct {
	X, Y   int
	Length int
}

// MovedPayload carries the step count and the new head
type MovedPayload struct {
	Tick   uint64
	X, Y   int
	Length int
}

// ScorePayload contains a score value
type ScorePayload struct {
	Score int
}

// CollisionCause names what ended the run
type CollisionCause uint8

const (
	CauseWall CollisionCause = iota
	CauseSelf
)

// GameOverPayload contains the final tally of a run
type GameOverPayload struct {
	RunID     string
	Score     int
	HighScore int
	NewHigh   bool
	Cause     CollisionCause
}
