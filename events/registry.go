package events

var typeToName = map[EventType]string{
	EventGameStarted:      "GameStarted",
	EventStateChanged:     "StateChanged",
	EventFoodEaten:        "FoodEaten",
	EventScoreChanged:     "ScoreChanged",
	EventHighScoreChanged: "HighScoreChanged",
	EventGameOver:         "GameOver",
	EventGameReset:        "GameReset",
	EventSnakeMoved:       "SnakeMoved",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, n := range typeToName {
		m[n] = t
	}
	return m
}()

// String returns the registered name of the event type
func (t EventType) String() string {
	if n, ok := typeToName[t]; ok {
		return n
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// String returns a human-readable cause
func (c CollisionCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "unknown"
	}
}
