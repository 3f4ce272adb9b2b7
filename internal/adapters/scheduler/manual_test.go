package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_EveryFiresOnInterval(t *testing.T) {
	s := NewManual()
	count := 0
	s.Every(100*time.Millisecond, func() { count++ })

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, count)

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, count)

	s.Advance(time.Second)
	assert.Equal(t, 11, count)
	assert.Equal(t, 1100*time.Millisecond, s.Now())
}

func TestManual_AfterFiresOnce(t *testing.T) {
	s := NewManual()
	count := 0
	s.After(time.Second, func() { count++ })

	s.Advance(5 * time.Second)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, s.Pending())
}

func TestManual_CancelStopsFiring(t *testing.T) {
	s := NewManual()
	count := 0
	h := s.Every(time.Second, func() { count++ })

	s.Advance(2 * time.Second)
	h.Cancel()
	h.Cancel()
	s.Advance(5 * time.Second)

	assert.Equal(t, 2, count)
	assert.Equal(t, 0, s.Pending())
}

func TestManual_TiesFireInRegistrationOrder(t *testing.T) {
	s := NewManual()
	var order []string
	s.Every(time.Second, func() { order = append(order, "a") })
	s.Every(500*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(time.Second)

	assert.Equal(t, []string{"b", "a", "b"}, order)
}

func TestManual_CallbackCancelsOther(t *testing.T) {
	s := NewManual()
	fired := false
	var other interface{ Cancel() }
	s.Every(time.Second, func() { other.Cancel() })
	other = s.Every(time.Second, func() { fired = true })

	s.Advance(3 * time.Second)

	assert.False(t, fired)
	assert.Equal(t, 1, s.Pending())
}

func TestManual_CallbackSchedulesNew(t *testing.T) {
	s := NewManual()
	var at []time.Duration
	s.After(time.Second, func() {
		s.Every(250*time.Millisecond, func() { at = append(at, s.Now()) })
	})

	s.Advance(1500 * time.Millisecond)

	assert.Equal(t, []time.Duration{1250 * time.Millisecond, 1500 * time.Millisecond}, at)
}
