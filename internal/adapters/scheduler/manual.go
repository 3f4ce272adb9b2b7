package scheduler

import (
	"time"

	"github.com/renato0307/stoplight/internal/ports"
)

// Manual is a virtual-clock scheduler. Nothing fires until Advance is called,
// and callbacks run synchronously on the caller's goroutine.
type Manual struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	cancelled bool
	due       time.Duration
	fn        func()
	interval  time.Duration
	seq       int
}

func (t *manualTimer) Cancel() {
	t.cancelled = true
}

// NewManual creates a Manual scheduler at virtual time zero
func NewManual() *Manual {
	return &Manual{}
}

// Every implements ports.Scheduler
func (m *Manual) Every(interval time.Duration, fn func()) ports.Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return m.add(interval, interval, fn)
}

// After implements ports.Scheduler
func (m *Manual) After(delay time.Duration, fn func()) ports.Handle {
	if delay < 0 {
		delay = 0
	}
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, interval time.Duration, fn func()) *manualTimer {
	m.seq++
	t := &manualTimer{due: m.now + delay, fn: fn, interval: interval, seq: m.seq}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due callbacks in time order.
// Callbacks due at the same instant fire in registration order. Sources
// created or cancelled by a callback take effect immediately.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.cancelled = true
		}
		next.fn()
	}
	m.now = target
	m.compact()
}

// Now returns the virtual time elapsed since creation
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of live sources
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range m.timers {
		if t.cancelled || t.due > limit {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}
