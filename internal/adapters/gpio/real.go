//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealLamps drives lamps through the Linux GPIO character device.
type RealLamps struct {
	chip  *gpiocdev.Chip
	lines []*gpiocdev.Line // green, yellow, red
}

// NewRealLamps requests the three lamp lines as outputs, initially low.
func NewRealLamps(chipName string, pins Pins) (*RealLamps, error) {
	if chipName == "" {
		chipName = "gpiochip0"
	}
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	l := &RealLamps{chip: chip}
	for _, pin := range []int{pins.Green, pins.Yellow, pins.Red} {
		line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
		if err != nil {
			_ = l.Close()
			return nil, fmt.Errorf("request lamp pin %d: %w", pin, err)
		}
		l.lines = append(l.lines, line)
	}

	return l, nil
}

// Set drives each lamp on or off.
func (l *RealLamps) Set(green, yellow, red bool) error {
	for i, on := range []bool{green, yellow, red} {
		if err := l.lines[i].SetValue(boolToValue(on)); err != nil {
			return fmt.Errorf("set lamp pin %d: %w", l.lines[i].Offset(), err)
		}
	}
	return nil
}

// Close drives the lamps low and returns the lines to input with pull-down,
// matching Pi boot defaults.
func (l *RealLamps) Close() error {
	var errs []error

	for _, line := range l.lines {
		if err := line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear pin %d: %w", line.Offset(), err))
		}
		if err := line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure pin %d: %w", line.Offset(), err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin %d: %w", line.Offset(), err))
		}
	}
	l.lines = nil
	if l.chip != nil {
		if err := l.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
		l.chip = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

func boolToValue(on bool) int {
	if on {
		return 1
	}
	return 0
}
