package gpio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stoplight/internal/domain"
)

func TestSink_LightSet(t *testing.T) {
	tests := []struct {
		light    domain.Light
		expected LampState
	}{
		{domain.LightGreen, LampState{Green: true}},
		{domain.LightYellow, LampState{Yellow: true}},
		{domain.LightRed, LampState{Red: true}},
		{domain.LightOff, LampState{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.light), func(t *testing.T) {
			lamps := NewFakeLamps()
			NewSink(lamps).Emit(domain.LightSet(tt.light))

			require.Len(t, lamps.History, 1)
			assert.Equal(t, tt.expected, lamps.Current())
		})
	}
}

func TestSink_FlashDrivesYellowOnly(t *testing.T) {
	lamps := NewFakeLamps()
	sink := NewSink(lamps)

	sink.Emit(domain.LightSet(domain.LightGreen))
	sink.Emit(domain.FlashToggle(false))
	sink.Emit(domain.FlashToggle(true))

	assert.Equal(t, []LampState{
		{Green: true},
		{},
		{Yellow: true},
	}, lamps.History)
}

func TestSink_IgnoresOtherEvents(t *testing.T) {
	lamps := NewFakeLamps()
	sink := NewSink(lamps)

	sink.Emit(domain.Tick(domain.PhaseHolding, time.Second, 2*time.Second))
	sink.Emit(domain.TimerStarted(domain.HoldGreen))
	sink.Emit(domain.RebindCancelled(domain.ActionRed, domain.CancelReasonTimeout))

	assert.Empty(t, lamps.History)
}

func TestSink_SetErrorIsNotFatal(t *testing.T) {
	lamps := NewFakeLamps()
	lamps.SetError = errors.New("line busy")

	assert.NotPanics(t, func() {
		NewSink(lamps).Emit(domain.LightSet(domain.LightRed))
	})
}

func TestFakeLamps_Close(t *testing.T) {
	lamps := NewFakeLamps()
	require.NoError(t, lamps.Close())
	assert.True(t, lamps.Closed)
	assert.Equal(t, LampState{}, lamps.Current())
}
