package events

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake-arcade/constants"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (engine tick, feed, input)
//   - Consume: Single consumer (host loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [constants.EventQueueSize]GameEvent
	published [constants.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64

	// now stamps events created through Emit
	now func() time.Time
}

// NewEventQueue creates an empty queue stamping events with wall time
func NewEventQueue() *EventQueue {
	return &EventQueue{now: time.Now}
}

// SetClock replaces the timestamp source, used by tests for stable timestamps
func (eq *EventQueue) SetClock(now func() time.Time) {
	eq.now = now
}

// Emit builds a timestamped event and pushes it
func (eq *EventQueue) Emit(t EventType, payload any) {
	eq.Push(GameEvent{Type: t, Payload: payload, Timestamp: eq.now()})
}

// Push adds event using lock-free CAS with published flags pattern
func (eq *EventQueue) Push(event GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & constants.EventBufferMask
		eq.events[idx] = event
		eq.published[idx].Store(true) // MUST be after write

		// Drop the oldest unread event when the ring wraps
		head := eq.head.Load()
		if next-head > constants.EventQueueSize {
			eq.head.CompareAndSwap(head, next-constants.EventQueueSize)
		}
		return
	}
}

// Len returns the number of events waiting, capped at queue capacity
func (eq *EventQueue) Len() int {
	n := eq.tail.Load() - eq.head.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}

// Consume returns all pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > constants.EventQueueSize {
			avail = constants.EventQueueSize
			head = tail - constants.EventQueueSize
		}

		batch := make([]GameEvent, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & constants.EventBufferMask
			if !eq.published[idx].Load() {
				break // writer still in flight
			}
			batch = append(batch, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(batch))) {
			if len(batch) == 0 {
				return nil
			}
			return batch
		}
	}
}
