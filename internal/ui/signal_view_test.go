package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/stoplight/internal/domain"
)

func TestSignalView_PhaseLabel(t *testing.T) {
	v := NewSignalView()
	assert.Equal(t, "READY", v.PhaseLabel())

	v.Emit(domain.TimerStarted(domain.HoldRed))
	assert.Equal(t, "RED", v.PhaseLabel())

	v.Emit(domain.PhaseChanged(domain.PhaseWarning, domain.HoldRed))
	assert.Equal(t, "WARNING", v.PhaseLabel())

	v.Emit(domain.TimerPaused(domain.PhaseWarning, 3*time.Second))
	assert.Equal(t, "PAUSED", v.PhaseLabel())

	v.Emit(domain.TimerResumed(domain.PhaseWarning, 3*time.Second))
	v.Emit(domain.TimerStopped())
	assert.Equal(t, "READY", v.PhaseLabel())
}

func TestSignalView_Lights(t *testing.T) {
	v := NewSignalView()

	v.Emit(domain.LightSet(domain.LightGreen))
	assert.Equal(t, domain.LightGreen, v.light)

	v.Emit(domain.FlashToggle(false))
	assert.Equal(t, domain.LightYellow, v.light)
	assert.False(t, v.flashOn)

	v.Emit(domain.TimerCompleted(domain.HoldGreen))
	v.Emit(domain.LightSet(domain.LightRed))
	assert.Equal(t, domain.LightRed, v.light)
	assert.Equal(t, "Time is up", v.Status())
}

func TestSignalView_RebindPrompt(t *testing.T) {
	v := NewSignalView()

	v.Emit(domain.RebindBegan(domain.ActionGreen, domain.MustParseCombo("Alt+G"), 10))
	assert.True(t, v.Capturing())
	assert.Contains(t, v.RebindView(), "'green'")
	assert.Contains(t, v.RebindView(), "10s")

	v.Emit(domain.RebindCountdown(domain.ActionGreen, 4))
	assert.Contains(t, v.RebindView(), "4s")

	v.Emit(domain.RebindCancelled(domain.ActionGreen, domain.CancelReasonTimeout))
	assert.False(t, v.Capturing())
	assert.Empty(t, v.RebindView())
	assert.Equal(t, "Rebind of green timed out", v.Status())
}

func TestSignalView_RebindOutcomes(t *testing.T) {
	v := NewSignalView()

	v.Emit(domain.RebindSucceeded(domain.ActionRed, domain.MustParseCombo("F5")))
	assert.Equal(t, "red bound to F5", v.Status())

	v.Emit(domain.RebindFailed(domain.ActionRed, domain.MustParseCombo("Alt+G"), domain.ErrRegistrationConflict))
	assert.Contains(t, v.Status(), "Cannot bind red")
}

func TestSignalView_ViewShowsCountdown(t *testing.T) {
	v := NewSignalView()
	v.Emit(domain.TimerStarted(domain.HoldGreen))
	v.Emit(domain.Tick(domain.PhaseHolding, 61*time.Second, 90*time.Second))

	out := v.View(100)

	assert.Contains(t, out, "GREEN")
	assert.Contains(t, out, "01:01")
}
