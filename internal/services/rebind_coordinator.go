package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// RebindTimeout is how long the coordinator waits for a key
const RebindTimeout = 10 * time.Second

// RebindState is the coordinator's negotiation state
type RebindState string

const (
	RebindIdle        RebindState = "idle"
	RebindAwaitingKey RebindState = "awaiting_key"
	RebindCommitting  RebindState = "committing"
)

// RebindSession describes the rebind in flight
type RebindSession struct {
	Action      domain.Action
	Deadline    time.Time
	ID          string
	PriorCombo  domain.Combo
	SecondsLeft int
	Snapshot    domain.HotkeyMap
}

// PersistHotkeysFunc saves a committed mapping. A non-nil error rolls the commit back.
type PersistHotkeysFunc func(m domain.HotkeyMap) error

// RebindCoordinator negotiates a single rebind at a time against the registry
type RebindCoordinator struct {
	countdown ports.Handle
	now       func() time.Time
	persist   PersistHotkeysFunc
	registry  *HotkeyRegistry
	scheduler ports.Scheduler
	session   *RebindSession
	sink      ports.DisplaySink
	state     RebindState
	timeout   time.Duration
}

// NewRebindCoordinator creates an idle coordinator
func NewRebindCoordinator(
	registry *HotkeyRegistry,
	scheduler ports.Scheduler,
	sink ports.DisplaySink,
) *RebindCoordinator {
	return &RebindCoordinator{
		now:       time.Now,
		registry:  registry,
		scheduler: scheduler,
		sink:      sink,
		state:     RebindIdle,
		timeout:   RebindTimeout,
	}
}

// SetPersistHook sets the function awaited before a commit is final
func (c *RebindCoordinator) SetPersistHook(fn PersistHotkeysFunc) {
	c.persist = fn
}

// State returns the negotiation state
func (c *RebindCoordinator) State() RebindState {
	return c.state
}

// IsCapturing reports whether the next key event belongs to the coordinator
func (c *RebindCoordinator) IsCapturing() bool {
	return c.state == RebindAwaitingKey
}

// Session returns a copy of the session in flight
func (c *RebindCoordinator) Session() (RebindSession, bool) {
	if c.session == nil {
		return RebindSession{}, false
	}
	s := *c.session
	s.Snapshot = c.session.Snapshot.Clone()
	return s, true
}

// Begin opens a rebind session for action and releases its current combo.
// Beginning the action already being rebound is a no-op.
func (c *RebindCoordinator) Begin(action domain.Action) error {
	if _, err := domain.ParseAction(string(action)); err != nil {
		return err
	}

	switch c.state {
	case RebindCommitting:
		return &domain.RebindError{Action: action, Err: domain.ErrSessionBusy}
	case RebindAwaitingKey:
		if c.session.Action == action {
			return nil
		}
		return &domain.RebindError{
			Action: action,
			Err:    fmt.Errorf("%w: '%s' is being rebound", domain.ErrSessionBusy, c.session.Action),
		}
	}

	prior, _ := c.registry.Binding(action)
	snapshot := c.registry.Bindings()
	if !prior.IsZero() {
		if err := c.registry.Unregister(prior); err != nil {
			logging.Logger.Error("Failed to release hotkey for rebind", "action", action, "error", err)
			return &domain.RebindError{
				Action: action,
				Combo:  prior,
				Err:    fmt.Errorf("%w: %w", domain.ErrRegistrationFailure, err),
			}
		}
	}

	c.stopCountdown()
	seconds := int(c.timeout / time.Second)
	c.session = &RebindSession{
		Action:      action,
		Deadline:    c.now().Add(c.timeout),
		ID:          uuid.New().String(),
		PriorCombo:  prior,
		SecondsLeft: seconds,
		Snapshot:    snapshot,
	}
	c.state = RebindAwaitingKey

	logging.Logger.Info("Rebind started", "session", c.session.ID, "action", action, "prior", prior.String())
	c.emit(domain.RebindBegan(action, prior, seconds))
	c.countdown = c.scheduler.Every(time.Second, c.onCountdown)
	return nil
}

func (c *RebindCoordinator) onCountdown() {
	if c.state != RebindAwaitingKey {
		return
	}
	c.session.SecondsLeft--
	if c.session.SecondsLeft <= 0 {
		logging.Logger.Info("Rebind timed out", "session", c.session.ID, "action", c.session.Action)
		c.abort(domain.CancelReasonTimeout)
		return
	}
	c.emit(domain.RebindCountdown(c.session.Action, c.session.SecondsLeft))
}

// HandleKey feeds a raw key event into the capture. It returns true when
// the event was consumed. Escape cancels; modifier-only keys are ignored.
func (c *RebindCoordinator) HandleKey(event domain.KeyEvent) bool {
	if c.state != RebindAwaitingKey {
		return false
	}
	if event.IsEscape() {
		c.Cancel()
		return true
	}
	combo, ok := event.Combo()
	if !ok {
		logging.Logger.Debug("Ignoring non-terminal key during rebind", "key", event.Key)
		return true
	}
	if err := c.Complete(combo); err != nil {
		logging.Logger.Warn("Rebind failed", "combo", combo.String(), "error", err)
	}
	return true
}

// Complete commits candidate for the action being rebound.
// Any failure leaves the mapping exactly as it was before Begin.
func (c *RebindCoordinator) Complete(candidate domain.Combo) error {
	if c.state != RebindAwaitingKey {
		return domain.ErrNoRebindSession
	}

	c.stopCountdown()
	c.state = RebindCommitting
	s := c.session
	defer c.finish()

	if candidate == s.PriorCombo {
		if err := c.registry.RegisterAll(s.Snapshot); err != nil {
			c.emit(domain.RebindFailed(s.Action, candidate, err))
			return err
		}
		logging.Logger.Info("Rebind kept the same combo", "session", s.ID, "action", s.Action)
		c.emit(domain.RebindSucceeded(s.Action, candidate))
		return nil
	}

	if c.registry.IsTaken(candidate) {
		owner, _ := c.registry.Lookup(candidate)
		err := &domain.RebindError{
			Action: s.Action,
			Combo:  candidate,
			Err:    fmt.Errorf("%w: already bound to '%s'", domain.ErrRegistrationConflict, owner),
		}
		c.restore(s)
		c.emit(domain.RebindFailed(s.Action, candidate, err))
		return err
	}

	next := s.Snapshot.Clone()
	next[s.Action] = candidate
	if err := c.registry.RegisterAll(next); err != nil {
		// RegisterAll already fell back to the last-known-good map
		c.restore(s)
		c.emit(domain.RebindFailed(s.Action, candidate, err))
		return err
	}

	if c.persist != nil {
		if err := c.persist(next); err != nil {
			wrapped := &domain.RebindError{
				Action: s.Action,
				Combo:  candidate,
				Err:    fmt.Errorf("failed to save hotkeys: %w", err),
			}
			logging.Logger.Error("Rolling back rebind after save failure", "session", s.ID, "error", err)
			c.restore(s)
			c.emit(domain.RebindFailed(s.Action, candidate, wrapped))
			return wrapped
		}
	}

	logging.Logger.Info("Rebind committed", "session", s.ID, "action", s.Action, "combo", candidate.String())
	c.emit(domain.RebindSucceeded(s.Action, candidate))
	return nil
}

// Cancel abandons the rebind and restores the previous combo
func (c *RebindCoordinator) Cancel() bool {
	if c.state != RebindAwaitingKey {
		return false
	}
	logging.Logger.Info("Rebind cancelled", "session", c.session.ID, "action", c.session.Action)
	c.abort(domain.CancelReasonOperator)
	return true
}

func (c *RebindCoordinator) abort(reason string) {
	c.stopCountdown()
	c.state = RebindCommitting
	s := c.session
	c.restore(s)
	c.emit(domain.RebindCancelled(s.Action, reason))
	c.finish()
}

func (c *RebindCoordinator) restore(s *RebindSession) {
	if c.registry.Bindings().Equal(s.Snapshot) && c.registry.IsTaken(s.PriorCombo) {
		return
	}
	if err := c.registry.RegisterAll(s.Snapshot); err != nil {
		logging.Logger.Error("Failed to restore hotkeys", "session", s.ID, "error", err)
	}
}

func (c *RebindCoordinator) finish() {
	c.session = nil
	c.state = RebindIdle
}

func (c *RebindCoordinator) stopCountdown() {
	if c.countdown != nil {
		c.countdown.Cancel()
		c.countdown = nil
	}
}

// emit tags the event with the open session so sinks can correlate it
func (c *RebindCoordinator) emit(event domain.Event) {
	if c.session != nil {
		event.Session = c.session.ID
	}
	if c.sink != nil {
		c.sink.Emit(event)
	}
}
