package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/events"
)

// SoundManager plays game effects through a single beep mixer
// Every method is a no-op when the speaker is not initialized, disabled, or muted
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	// play hands a streamer to the mixer; replaced in tests
	play func(s beep.Streamer)

	// Effects requested, including ones dropped while muted or uninitialized
	requested [core.SoundTypeCount]atomic.Int64
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.play = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted sets the mute flag
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips the mute flag and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			log.Printf("audio: muted=%v", !old)
			return !old
		}
	}
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Play queues one effect
func (sm *SoundManager) Play(st core.SoundType) {
	if st < 0 || st >= core.SoundTypeCount {
		return
	}
	sm.requested[st].Add(1)

	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}
	sm.play(s)
}

// Requested returns how many times an effect was asked for
func (sm *SoundManager) Requested(st core.SoundType) int64 {
	if st < 0 || st >= core.SoundTypeCount {
		return 0
	}
	return sm.requested[st].Load()
}

// HandleEvent maps game events to effects
func (sm *SoundManager) HandleEvent(_ engine.Frame, ev events.GameEvent) {
	switch ev.Type {
	case events.EventGameStarted:
		sm.Play(core.SoundStart)
	case events.EventFoodEaten:
		sm.Play(core.SoundBell)
	case events.EventGameOver:
		if p, ok := ev.Payload.(*events.GameOverPayload); ok && p.NewHigh {
			sm.Play(core.SoundCoin)
			return
		}
		sm.Play(core.SoundBuzz)
	}
}

// EventTypes returns the event types this handler processes
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGameStarted,
		events.EventFoodEaten,
		events.EventGameOver,
	}
}
