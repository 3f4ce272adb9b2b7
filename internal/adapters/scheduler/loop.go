package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// Loop is the wall-clock scheduler. Timer goroutines only post callbacks
// to Fired; the owner of the event loop receives them and calls Run, so
// every callback executes on that single loop.
type Loop struct {
	closed  chan struct{}
	fired   chan Fired
	handles map[*loopHandle]struct{}
	mu      sync.Mutex
	once    sync.Once
}

// Fired is a callback waiting to run on the event loop
type Fired struct {
	fn     func()
	handle *loopHandle
}

// Run executes the callback unless its source was cancelled after it was queued
func (f Fired) Run() {
	if f.handle.cancelled.Load() {
		return
	}
	if f.handle.oneShot {
		f.handle.Cancel()
	}
	f.fn()
}

type loopHandle struct {
	cancelled atomic.Bool
	loop      *Loop
	oneShot   bool
	stop      chan struct{}
	stopOnce  sync.Once
}

func (h *loopHandle) Cancel() {
	h.cancelled.Store(true)
	h.stopOnce.Do(func() { close(h.stop) })
	h.loop.forget(h)
}

// NewLoop creates a Loop. The buffer absorbs bursts while the event loop is busy.
func NewLoop() *Loop {
	return &Loop{
		closed:  make(chan struct{}),
		fired:   make(chan Fired, 64),
		handles: make(map[*loopHandle]struct{}),
	}
}

// Fired returns the channel the event loop drains
func (l *Loop) Fired() <-chan Fired {
	return l.fired
}

// Closed is closed once Close has been called
func (l *Loop) Closed() <-chan struct{} {
	return l.closed
}

// Every implements ports.Scheduler
func (l *Loop) Every(interval time.Duration, fn func()) ports.Handle {
	h := l.track(false)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				if !l.post(h, fn) {
					return
				}
			}
		}
	}()
	return h
}

// After implements ports.Scheduler
func (l *Loop) After(delay time.Duration, fn func()) ports.Handle {
	h := l.track(true)
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-h.stop:
		case <-timer.C:
			l.post(h, fn)
		}
	}()
	return h
}

// Close cancels every live source. Callbacks already queued become no-ops.
func (l *Loop) Close() {
	l.once.Do(func() {
		l.mu.Lock()
		live := make([]*loopHandle, 0, len(l.handles))
		for h := range l.handles {
			live = append(live, h)
		}
		l.mu.Unlock()

		for _, h := range live {
			h.Cancel()
		}
		close(l.closed)
		logging.Logger.Debug("Scheduler closed", "cancelled_sources", len(live))
	})
}

func (l *Loop) track(oneShot bool) *loopHandle {
	h := &loopHandle{loop: l, oneShot: oneShot, stop: make(chan struct{})}
	l.mu.Lock()
	l.handles[h] = struct{}{}
	l.mu.Unlock()
	return h
}

func (l *Loop) forget(h *loopHandle) {
	l.mu.Lock()
	delete(l.handles, h)
	l.mu.Unlock()
}

func (l *Loop) post(h *loopHandle, fn func()) bool {
	select {
	case l.fired <- Fired{fn: fn, handle: h}:
		return true
	case <-h.stop:
		return false
	case <-l.closed:
		return false
	}
}
