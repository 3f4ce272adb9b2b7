package domain

import (
	"fmt"
	"strings"
	"time"
)

// Light is the lamp currently lit on the signal
type Light string

const (
	LightOff    Light = "off"
	LightGreen  Light = "green"
	LightYellow Light = "yellow"
	LightRed    Light = "red"
)

// ParseLight converts a string into a Light
func ParseLight(s string) (Light, error) {
	switch Light(strings.ToLower(strings.TrimSpace(s))) {
	case LightOff:
		return LightOff, nil
	case LightGreen:
		return LightGreen, nil
	case LightYellow:
		return LightYellow, nil
	case LightRed:
		return LightRed, nil
	}
	return "", fmt.Errorf("unknown light %q (valid: off, green, yellow, red)", s)
}

// HoldColor selects which color is held before the warning phase.
// The complement is shown once the run completes.
type HoldColor string

const (
	HoldGreen HoldColor = "green"
	HoldRed   HoldColor = "red"
)

// ParseHoldColor converts a string into a HoldColor
func ParseHoldColor(s string) (HoldColor, error) {
	switch HoldColor(strings.ToLower(strings.TrimSpace(s))) {
	case HoldGreen:
		return HoldGreen, nil
	case HoldRed:
		return HoldRed, nil
	}
	return "", fmt.Errorf("unknown hold mode %q (valid: green, red)", s)
}

// Light returns the lamp held during the holding phase
func (c HoldColor) Light() Light {
	if c == HoldRed {
		return LightRed
	}
	return LightGreen
}

// Complement returns the lamp shown after the run completes
func (c HoldColor) Complement() Light {
	if c == HoldRed {
		return LightGreen
	}
	return LightRed
}

// Phase is a stage of a timer run
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseHolding Phase = "holding"
	PhaseWarning Phase = "warning"
	PhaseDone    Phase = "done"
)

// IsActive reports whether a run is in progress
func (p Phase) IsActive() bool {
	return p == PhaseHolding || p == PhaseWarning
}

// TimerConfig holds the durations of a timer run.
// The engine snapshots it when a run starts.
type TimerConfig struct {
	FlashInterval time.Duration
	HoldDuration  time.Duration
	WarnDuration  time.Duration
}

// Default timer values
const (
	DefaultFlashInterval = 500 * time.Millisecond
	DefaultHoldDuration  = 30 * time.Second
	DefaultWarnDuration  = 20 * time.Second
)

// DefaultTimerConfig returns the timer configuration used when nothing is persisted
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		FlashInterval: DefaultFlashInterval,
		HoldDuration:  DefaultHoldDuration,
		WarnDuration:  DefaultWarnDuration,
	}
}

// Validate checks that every duration is positive
func (c TimerConfig) Validate() error {
	if c.HoldDuration <= 0 {
		return fmt.Errorf("hold duration must be positive, got %s", c.HoldDuration)
	}
	if c.WarnDuration <= 0 {
		return fmt.Errorf("warn duration must be positive, got %s", c.WarnDuration)
	}
	if c.FlashInterval <= 0 {
		return fmt.Errorf("flash interval must be positive, got %s", c.FlashInterval)
	}
	return nil
}

// TotalFor returns the full duration of a phase, or zero for inactive phases
func (c TimerConfig) TotalFor(p Phase) time.Duration {
	switch p {
	case PhaseHolding:
		return c.HoldDuration
	case PhaseWarning:
		return c.WarnDuration
	}
	return 0
}

// TimerState is a snapshot of the engine's run state
type TimerState struct {
	Mode      HoldColor
	Paused    bool
	Phase     Phase
	Remaining time.Duration
}

// Progress returns the elapsed fraction of a phase, clamped to [0,1]
func Progress(total, remaining time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(total-remaining) / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// FormatCountdown renders a duration as MM:SS, rounding seconds up
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
