package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventGameStarted signals a fresh run
	// Trigger: Engine.Start from Idle or Over
	// Consumer: SoundManager, feed Hub | Payload: *GameStartedPayload
	EventGameStarted EventType = iota

	// EventStateChanged signals a state machine transition
	// Trigger: Start, Pause toggle, Resume, Reset, collision
	// Consumer: feed Hub | Payload: *StateChangedPayload
	EventStateChanged

	// EventFoodEaten signals the head entered the food cell
	// Trigger: Engine tick | Payload: *FoodEatenPayload
	EventFoodEaten

	// EventScoreChanged signals a new running score
	// Trigger: food eaten, Start, Reset | Payload: *ScorePayload
	EventScoreChanged

	// EventHighScoreChanged signals the persisted best score moved
	// Trigger: running score exceeded the best | Payload: *ScorePayload
	EventHighScoreChanged

	// EventGameOver signals the run ended on a wall or self collision
	// Consumer: SoundManager, feed Hub | Payload: *GameOverPayload
	EventGameOver

	// EventGameReset signals the board was cleared back to Idle
	// Trigger: Engine.Reset | Payload: nil
	EventGameReset

	// EventSnakeMoved signals one completed step, emitted on every tick that does not end the run
	// Trigger: Engine tick | Consumer: host loop feed broadcast | Payload: *MovedPayload
	EventSnakeMoved
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
