package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stoplight/internal/adapters/scheduler"
	"github.com/renato0307/stoplight/internal/domain"
)

type dispatchFixture struct {
	dispatcher *Dispatcher
	engine     *TimerEngine
	rebind     *RebindCoordinator
	rec        *recorder
	registry   *HotkeyRegistry
	sched      *scheduler.Manual
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()
	sched := scheduler.NewManual()
	rec := &recorder{}
	engine, err := NewTimerEngine(sched, rec, domain.DefaultTimerConfig())
	require.NoError(t, err)
	registry := NewHotkeyRegistry(newFakeRegistrar())
	require.NoError(t, registry.RegisterAll(domain.DefaultHotkeys()))
	rebind := NewRebindCoordinator(registry, sched, rec)
	return &dispatchFixture{
		dispatcher: NewDispatcher(engine, registry, rebind, rec),
		engine:     engine,
		rebind:     rebind,
		rec:        rec,
		registry:   registry,
		sched:      sched,
	}
}

func TestDispatcher_LightActionsWhenIdle(t *testing.T) {
	tests := []struct {
		action   domain.Action
		expected domain.Light
	}{
		{domain.ActionGreen, domain.LightGreen},
		{domain.ActionYellow, domain.LightYellow},
		{domain.ActionRed, domain.LightRed},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			f := newDispatchFixture(t)

			require.NoError(t, f.dispatcher.Trigger(tt.action))

			assert.Equal(t, []domain.Light{tt.expected}, f.rec.lights())
			assert.Equal(t, domain.PhaseIdle, f.engine.State().Phase)
		})
	}
}

func TestDispatcher_LightActionPausesActiveTimer(t *testing.T) {
	f := newDispatchFixture(t)
	require.NoError(t, f.dispatcher.Trigger(domain.ActionTimer))
	f.rec.reset()

	require.NoError(t, f.dispatcher.Trigger(domain.ActionRed))

	assert.True(t, f.engine.State().Paused)
	assert.Empty(t, f.rec.lights())
	assert.Equal(t, []domain.EventKind{domain.EventTimerPaused}, f.rec.kinds())

	// A second light action keeps it paused
	require.NoError(t, f.dispatcher.Trigger(domain.ActionGreen))
	assert.True(t, f.engine.State().Paused)
}

func TestDispatcher_TimerActions(t *testing.T) {
	f := newDispatchFixture(t)

	require.NoError(t, f.dispatcher.Trigger(domain.ActionTimerRed))
	assert.Equal(t, domain.HoldRed, f.engine.State().Mode)
	assert.Equal(t, domain.PhaseHolding, f.engine.State().Phase)

	require.NoError(t, f.dispatcher.Trigger(domain.ActionTimer))
	assert.True(t, f.engine.State().Paused)
	assert.Equal(t, domain.HoldRed, f.engine.State().Mode)

	require.NoError(t, f.dispatcher.Trigger(domain.ActionTimerRed))
	assert.False(t, f.engine.State().Paused)
}

func TestDispatcher_TimerStartsAgainAfterDone(t *testing.T) {
	f := newDispatchFixture(t)
	require.NoError(t, f.engine.SetConfig(domain.TimerConfig{
		HoldDuration:  time.Second,
		WarnDuration:  time.Second,
		FlashInterval: 500 * time.Millisecond,
	}))

	require.NoError(t, f.dispatcher.Trigger(domain.ActionTimer))
	f.sched.Advance(3 * time.Second)
	require.Equal(t, domain.PhaseDone, f.engine.State().Phase)

	require.NoError(t, f.dispatcher.Trigger(domain.ActionTimer))
	assert.Equal(t, domain.PhaseHolding, f.engine.State().Phase)
}

func TestDispatcher_HandleCommands(t *testing.T) {
	f := newDispatchFixture(t)

	require.NoError(t, f.dispatcher.Handle(StartTimerCommand(domain.HoldGreen)))
	require.NoError(t, f.dispatcher.Handle(Command{Kind: CommandTogglePause}))
	assert.True(t, f.engine.State().Paused)

	require.NoError(t, f.dispatcher.Handle(Command{Kind: CommandStop}))
	assert.Equal(t, domain.PhaseIdle, f.engine.State().Phase)

	require.NoError(t, f.dispatcher.Handle(SetLightCommand(domain.LightYellow)))
	require.NoError(t, f.dispatcher.Handle(Command{Kind: CommandClear}))
	lights := f.rec.lights()
	assert.Equal(t, domain.LightOff, lights[len(lights)-1])

	require.NoError(t, f.dispatcher.Handle(BeginRebindCommand(domain.ActionYellow)))
	assert.True(t, f.rebind.IsCapturing())
	require.NoError(t, f.dispatcher.Handle(Command{Kind: CommandCancelRebind}))
	assert.ErrorIs(t, f.dispatcher.Handle(Command{Kind: CommandCancelRebind}), domain.ErrNoRebindSession)

	assert.Error(t, f.dispatcher.Handle(Command{Kind: "bogus"}))
	assert.ErrorIs(t, f.dispatcher.Handle(TriggerCommand("bogus")), domain.ErrUnknownAction)
}

func TestDispatcher_HandleKeyTriggersBoundAction(t *testing.T) {
	f := newDispatchFixture(t)

	assert.True(t, f.dispatcher.HandleKey(domain.KeyEvent{Alt: true, Key: "s"}))
	assert.Equal(t, domain.PhaseHolding, f.engine.State().Phase)

	assert.False(t, f.dispatcher.HandleKey(domain.KeyEvent{Alt: true, Key: "z"}))
	assert.False(t, f.dispatcher.HandleKey(domain.KeyEvent{Key: "shift"}))
}

func TestDispatcher_HandleKeyDuringRebindGoesToCoordinator(t *testing.T) {
	f := newDispatchFixture(t)
	require.NoError(t, f.dispatcher.Handle(BeginRebindCommand(domain.ActionTimer)))

	// Alt+G is bound to green but must be captured, not triggered
	assert.True(t, f.dispatcher.HandleKey(domain.KeyEvent{Alt: true, Key: "g"}))

	assert.Empty(t, f.rec.lights())
	assert.Equal(t, domain.PhaseIdle, f.engine.State().Phase)
	_, ok := f.rec.last(domain.EventRebindFailed)
	assert.True(t, ok)

	// The released combo of the action being rebound no longer triggers it
	require.NoError(t, f.dispatcher.Handle(BeginRebindCommand(domain.ActionTimer)))
	require.True(t, f.dispatcher.HandleKey(domain.KeyEvent{Key: "f9"}))
	assert.False(t, f.dispatcher.HandleKey(domain.KeyEvent{Alt: true, Key: "s"}))
	assert.True(t, f.dispatcher.HandleKey(domain.KeyEvent{Key: "f9"}))
	assert.Equal(t, domain.PhaseHolding, f.engine.State().Phase)
}
