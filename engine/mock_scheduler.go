package engine

import (
	"sync"
	"time"
)

// ManualScheduler is a controllable Scheduler for tests
// Nothing fires until Fire is called
type ManualScheduler struct {
	mu      sync.Mutex
	entries []*manualEntry
}

type manualEntry struct {
	interval  time.Duration
	fn        func()
	cancelled bool
}

// NewManualScheduler creates an empty manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	e := &manualEntry{interval: interval, fn: fn}
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		e.cancelled = true
		m.mu.Unlock()
	}
}

// Fire invokes every live callback once, in schedule order
// Returns the number of callbacks invoked
func (m *ManualScheduler) Fire() int {
	m.mu.Lock()
	live := make([]*manualEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	m.mu.Unlock()

	for _, e := range live {
		e.fn()
	}
	return len(live)
}

// FireStale invokes callbacks of cancelled schedules, simulating a tick already in flight
func (m *ManualScheduler) FireStale() int {
	m.mu.Lock()
	var stale []*manualEntry
	for _, e := range m.entries {
		if e.cancelled {
			stale = append(stale, e)
		}
	}
	m.mu.Unlock()

	for _, e := range stale {
		e.fn()
	}
	return len(stale)
}

// Live returns the number of uncancelled schedules
func (m *ManualScheduler) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// LastInterval returns the interval of the most recent schedule
func (m *ManualScheduler) LastInterval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return 0
	}
	return m.entries[len(m.entries)-1].interval
}
