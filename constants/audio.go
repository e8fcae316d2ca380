package constants

import "time"

// Audio Engine Timing
const (
	// SpeakerBufferDuration sizes the beep speaker buffer
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultSampleRate is used unless SNAKE_SAMPLE_RATE overrides it
	DefaultSampleRate = 44100
)

// Start Sound Timing
const (
	StartSoundDuration = 120 * time.Millisecond
	StartSoundAttack   = 5 * time.Millisecond
	StartSoundRelease  = 60 * time.Millisecond
)

// Eat (Bell) Sound Timing
const (
	BellSoundDuration           = 300 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 250 * time.Millisecond
	BellSoundOvertoneRelease    = 120 * time.Millisecond
)

// Game Over (Buzz) Sound Timing
const (
	BuzzSoundDuration = 400 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 250 * time.Millisecond
)

// High Score (Coin) Sound Timing
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)
