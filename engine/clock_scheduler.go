package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake-arcade/core"
)

// Scheduler runs a callback on a fixed interval until cancelled
// Cancel must be safe to call from inside the callback and more than once
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// ClockScheduler drives callbacks from a time.Ticker
// Each Every call owns one goroutine; cancel stops it without waiting
type ClockScheduler struct {
	// dispatch hands the callback to the host loop; nil runs it on the ticker goroutine
	dispatch func(fn func())

	active atomic.Int64
}

// NewClockScheduler creates a scheduler that posts callbacks through dispatch
func NewClockScheduler(dispatch func(fn func())) *ClockScheduler {
	return &ClockScheduler{dispatch: dispatch}
}

// Every starts a ticker and returns its cancel function
func (cs *ClockScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})
	var once sync.Once

	cs.active.Add(1)
	core.Go(func() {
		defer cs.active.Add(-1)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// Re-check so a tick racing with cancel is dropped
				select {
				case <-stop:
					return
				default:
				}
				if cs.dispatch != nil {
					cs.dispatch(fn)
				} else {
					fn()
				}
			}
		}
	})

	return func() {
		once.Do(func() { close(stop) })
	}
}

// Active returns the number of running ticker goroutines
func (cs *ClockScheduler) Active() int {
	return int(cs.active.Load())
}
