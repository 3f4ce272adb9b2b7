package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stoplight/internal/adapters/scheduler"
	"github.com/renato0307/stoplight/internal/domain"
)

type rebindFixture struct {
	coordinator *RebindCoordinator
	keys        *fakeRegistrar
	rec         *recorder
	registry    *HotkeyRegistry
	sched       *scheduler.Manual
}

func newRebindFixture(t *testing.T) *rebindFixture {
	t.Helper()
	keys := newFakeRegistrar()
	registry := NewHotkeyRegistry(keys)
	require.NoError(t, registry.RegisterAll(domain.DefaultHotkeys()))
	sched := scheduler.NewManual()
	rec := &recorder{}
	return &rebindFixture{
		coordinator: NewRebindCoordinator(registry, sched, rec),
		keys:        keys,
		rec:         rec,
		registry:    registry,
		sched:       sched,
	}
}

func (f *rebindFixture) assertDefaultsIntact(t *testing.T) {
	t.Helper()
	assert.True(t, domain.DefaultHotkeys().Equal(f.registry.Bindings()))
	assert.ElementsMatch(t, comboStrings(domain.DefaultHotkeys()), f.keys.combos())
}

func TestRebindCoordinator_BeginReleasesPriorCombo(t *testing.T) {
	f := newRebindFixture(t)

	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))

	assert.Equal(t, RebindAwaitingKey, f.coordinator.State())
	assert.True(t, f.coordinator.IsCapturing())
	assert.False(t, f.keys.IsRegistered(combo("Alt+G")))

	session, ok := f.coordinator.Session()
	require.True(t, ok)
	assert.Equal(t, domain.ActionGreen, session.Action)
	assert.Equal(t, "Alt+G", session.PriorCombo.String())
	assert.Equal(t, 10, session.SecondsLeft)
	assert.NotEmpty(t, session.ID)
	assert.True(t, domain.DefaultHotkeys().Equal(session.Snapshot))

	began, ok := f.rec.last(domain.EventRebindBegan)
	require.True(t, ok)
	assert.Equal(t, 10, began.SecondsLeft)
	assert.Equal(t, 1, f.sched.Pending())
}

func TestRebindCoordinator_CompleteCommitsAndPersists(t *testing.T) {
	f := newRebindFixture(t)
	var saved domain.HotkeyMap
	f.coordinator.SetPersistHook(func(m domain.HotkeyMap) error {
		saved = m.Clone()
		return nil
	})

	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	require.NoError(t, f.coordinator.Complete(combo("Ctrl+Shift+G")))

	bindings := f.registry.Bindings()
	assert.Equal(t, "Ctrl+Shift+G", bindings[domain.ActionGreen].String())
	assert.True(t, bindings.Equal(saved))
	assert.True(t, f.keys.IsRegistered(combo("Ctrl+Shift+G")))
	assert.False(t, f.keys.IsRegistered(combo("Alt+G")))
	assert.Equal(t, RebindIdle, f.coordinator.State())
	assert.Equal(t, 0, f.sched.Pending())

	succeeded, ok := f.rec.last(domain.EventRebindSucceeded)
	require.True(t, ok)
	assert.Equal(t, domain.ActionGreen, succeeded.Action)
	assert.Equal(t, "Ctrl+Shift+G", succeeded.Combo.String())
}

func TestRebindCoordinator_EventsCarrySessionID(t *testing.T) {
	f := newRebindFixture(t)

	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	session, ok := f.coordinator.Session()
	require.True(t, ok)
	require.NoError(t, f.coordinator.Complete(combo("Ctrl+Shift+G")))

	began, ok := f.rec.last(domain.EventRebindBegan)
	require.True(t, ok)
	succeeded, ok := f.rec.last(domain.EventRebindSucceeded)
	require.True(t, ok)
	assert.Equal(t, session.ID, began.Session)
	assert.Equal(t, session.ID, succeeded.Session)

	require.NoError(t, f.coordinator.Begin(domain.ActionRed))
	assert.True(t, f.coordinator.Cancel())
	cancelled, ok := f.rec.last(domain.EventRebindCancelled)
	require.True(t, ok)
	assert.NotEmpty(t, cancelled.Session)
	assert.NotEqual(t, session.ID, cancelled.Session)
}

func TestRebindCoordinator_ConflictRestoresSnapshot(t *testing.T) {
	f := newRebindFixture(t)
	persisted := false
	f.coordinator.SetPersistHook(func(domain.HotkeyMap) error {
		persisted = true
		return nil
	})

	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	err := f.coordinator.Complete(combo("Alt+R"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationConflict)
	assert.Contains(t, err.Error(), "'red'")
	assert.False(t, persisted)
	f.assertDefaultsIntact(t)
	assert.Equal(t, RebindIdle, f.coordinator.State())

	failed, ok := f.rec.last(domain.EventRebindFailed)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, domain.ErrRegistrationConflict)
}

func TestRebindCoordinator_TimeoutRestoresSnapshot(t *testing.T) {
	f := newRebindFixture(t)
	require.NoError(t, f.coordinator.Begin(domain.ActionYellow))

	f.sched.Advance(9 * time.Second)
	assert.True(t, f.coordinator.IsCapturing())
	assert.Equal(t, 9, f.rec.count(domain.EventRebindCountdown))
	last, _ := f.rec.last(domain.EventRebindCountdown)
	assert.Equal(t, 1, last.SecondsLeft)

	f.sched.Advance(time.Second)

	assert.Equal(t, RebindIdle, f.coordinator.State())
	cancelled, ok := f.rec.last(domain.EventRebindCancelled)
	require.True(t, ok)
	assert.Equal(t, domain.CancelReasonTimeout, cancelled.Reason)
	assert.Equal(t, domain.ActionYellow, cancelled.Action)
	f.assertDefaultsIntact(t)
	assert.Equal(t, 0, f.sched.Pending())
}

func TestRebindCoordinator_KeyBeforeTimeoutWins(t *testing.T) {
	f := newRebindFixture(t)
	require.NoError(t, f.coordinator.Begin(domain.ActionRed))

	f.sched.Advance(9500 * time.Millisecond)
	assert.True(t, f.coordinator.HandleKey(domain.KeyEvent{Ctrl: true, Key: "r"}))
	f.sched.Advance(time.Minute)

	assert.Equal(t, 0, f.rec.count(domain.EventRebindCancelled))
	c, _ := f.registry.Binding(domain.ActionRed)
	assert.Equal(t, "Ctrl+R", c.String())
}

func TestRebindCoordinator_EscapeCancels(t *testing.T) {
	f := newRebindFixture(t)
	require.NoError(t, f.coordinator.Begin(domain.ActionTimer))

	assert.True(t, f.coordinator.HandleKey(domain.KeyEvent{Key: "esc"}))

	cancelled, ok := f.rec.last(domain.EventRebindCancelled)
	require.True(t, ok)
	assert.Equal(t, domain.CancelReasonOperator, cancelled.Reason)
	f.assertDefaultsIntact(t)
	assert.False(t, f.coordinator.Cancel())
}

func TestRebindCoordinator_IgnoresModifierOnlyKeys(t *testing.T) {
	f := newRebindFixture(t)
	require.NoError(t, f.coordinator.Begin(domain.ActionTimer))

	assert.True(t, f.coordinator.HandleKey(domain.KeyEvent{Ctrl: true, Key: "ctrl"}))
	assert.True(t, f.coordinator.HandleKey(domain.KeyEvent{Key: "pgup"}))

	assert.True(t, f.coordinator.IsCapturing())
	assert.Equal(t, 0, f.rec.count(domain.EventRebindFailed))
}

func TestRebindCoordinator_HandleKeyWhenIdle(t *testing.T) {
	f := newRebindFixture(t)

	assert.False(t, f.coordinator.HandleKey(domain.KeyEvent{Alt: true, Key: "g"}))
	assert.ErrorIs(t, f.coordinator.Complete(combo("Alt+X")), domain.ErrNoRebindSession)
	assert.False(t, f.coordinator.Cancel())
}

func TestRebindCoordinator_SingleFlight(t *testing.T) {
	f := newRebindFixture(t)
	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	f.rec.reset()

	// Same action: no-op, countdown untouched
	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	assert.Empty(t, f.rec.events)
	assert.Equal(t, 1, f.sched.Pending())

	err := f.coordinator.Begin(domain.ActionRed)
	assert.ErrorIs(t, err, domain.ErrSessionBusy)
	assert.True(t, f.keys.IsRegistered(combo("Alt+R")))

	session, _ := f.coordinator.Session()
	assert.Equal(t, domain.ActionGreen, session.Action)
}

func TestRebindCoordinator_BusyWhileCommitting(t *testing.T) {
	f := newRebindFixture(t)
	var beginErr error
	f.coordinator.SetPersistHook(func(domain.HotkeyMap) error {
		assert.Equal(t, RebindCommitting, f.coordinator.State())
		beginErr = f.coordinator.Begin(domain.ActionRed)
		return nil
	})

	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	require.NoError(t, f.coordinator.Complete(combo("F5")))

	assert.ErrorIs(t, beginErr, domain.ErrSessionBusy)
}

func TestRebindCoordinator_PersistFailureRollsBack(t *testing.T) {
	f := newRebindFixture(t)
	f.coordinator.SetPersistHook(func(domain.HotkeyMap) error {
		return errors.New("disk full")
	})

	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	err := f.coordinator.Complete(combo("F5"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	f.assertDefaultsIntact(t)
	assert.False(t, f.keys.IsRegistered(combo("F5")))
	assert.Equal(t, 1, f.rec.count(domain.EventRebindFailed))
	assert.Equal(t, 0, f.rec.count(domain.EventRebindSucceeded))
}

func TestRebindCoordinator_RegistrationFailureRollsBack(t *testing.T) {
	f := newRebindFixture(t)
	f.keys.refuse[combo("Ctrl+C")] = true

	require.NoError(t, f.coordinator.Begin(domain.ActionTimerRed))
	err := f.coordinator.Complete(combo("Ctrl+C"))

	assert.ErrorIs(t, err, domain.ErrRegistrationFailure)
	f.assertDefaultsIntact(t)
}

func TestRebindCoordinator_SelfRebindIsSilentSuccess(t *testing.T) {
	f := newRebindFixture(t)
	persisted := false
	f.coordinator.SetPersistHook(func(domain.HotkeyMap) error {
		persisted = true
		return nil
	})

	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	require.NoError(t, f.coordinator.Complete(combo("alt+g")))

	assert.False(t, persisted)
	f.assertDefaultsIntact(t)
	assert.Equal(t, 1, f.rec.count(domain.EventRebindSucceeded))
}

func TestRebindCoordinator_BeginAgainAfterFinish(t *testing.T) {
	f := newRebindFixture(t)
	require.NoError(t, f.coordinator.Begin(domain.ActionGreen))
	first, _ := f.coordinator.Session()
	require.True(t, f.coordinator.Cancel())

	require.NoError(t, f.coordinator.Begin(domain.ActionRed))
	second, _ := f.coordinator.Session()

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 10, second.SecondsLeft)
	assert.Equal(t, 1, f.sched.Pending())
}

func TestRebindCoordinator_BeginUnknownAction(t *testing.T) {
	f := newRebindFixture(t)

	err := f.coordinator.Begin(domain.Action("blue"))

	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.Equal(t, RebindIdle, f.coordinator.State())
}
