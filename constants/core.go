package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	// Only drives chrome repaints (drag pad feedback); board draws follow engine ticks
	FrameUpdateInterval = 33 * time.Millisecond

	// GameUpdateInterval is the default snake step interval (clock tick)
	GameUpdateInterval = 200 * time.Millisecond

	// MinTickInterval bounds the -tick flag from below
	MinTickInterval = 20 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// CommandQueueSize bounds pending remote commands waiting for the host loop
	CommandQueueSize = 64
)

// Remote Feed Limits
const (
	// FeedSendQueueSize bounds messages waiting for one client's writer; a full queue disconnects the client
	FeedSendQueueSize = 32

	// FeedWriteTimeout bounds a single websocket write
	FeedWriteTimeout = 2 * time.Second
)
