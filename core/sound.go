package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundStart SoundType = iota // Run started
	SoundBell                   // Food eaten
	SoundBuzz                   // Game over
	SoundCoin                   // New high score
	SoundTypeCount
)

func (s SoundType) String() string {
	names := [...]string{"start", "bell", "buzz", "coin"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}
