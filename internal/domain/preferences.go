package domain

import (
	"fmt"
	"time"
)

// DefaultVolume is the cue volume used when nothing is persisted
const DefaultVolume = 0.5

// Preferences are the operator choices that survive restarts
type Preferences struct {
	HoldDuration time.Duration
	Hotkeys      HotkeyMap
	Mode         HoldColor
	Volume       float64
	WarnDuration time.Duration
}

// DefaultPreferences returns the preferences used on first run
func DefaultPreferences() Preferences {
	return Preferences{
		HoldDuration: DefaultHoldDuration,
		Hotkeys:      DefaultHotkeys(),
		Mode:         HoldGreen,
		Volume:       DefaultVolume,
		WarnDuration: DefaultWarnDuration,
	}
}

// Validate checks every field
func (p Preferences) Validate() error {
	if p.HoldDuration <= 0 {
		return fmt.Errorf("hold duration must be positive, got %s", p.HoldDuration)
	}
	if p.WarnDuration <= 0 {
		return fmt.Errorf("warn duration must be positive, got %s", p.WarnDuration)
	}
	if p.Mode != HoldGreen && p.Mode != HoldRed {
		return fmt.Errorf("unknown hold mode %q", p.Mode)
	}
	if p.Volume < 0 || p.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %v", p.Volume)
	}
	return p.Hotkeys.Validate()
}

// TimerConfig builds the engine configuration from the preferences
func (p Preferences) TimerConfig(flashInterval time.Duration) TimerConfig {
	if flashInterval <= 0 {
		flashInterval = DefaultFlashInterval
	}
	return TimerConfig{
		FlashInterval: flashInterval,
		HoldDuration:  p.HoldDuration,
		WarnDuration:  p.WarnDuration,
	}
}
