// Package gpio drives a physical three-lamp signal head.
package gpio

import (
	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// Pins holds the BCM line offsets of the three lamps.
type Pins struct {
	Green  int
	Yellow int
	Red    int
}

// DefaultPins matches the wiring of the reference signal head.
var DefaultPins = Pins{Green: 17, Yellow: 27, Red: 22}

// Lamps abstracts the output lines so the sink can be tested without hardware.
type Lamps interface {
	// Set drives each lamp on or off.
	Set(green, yellow, red bool) error

	// Close drives every lamp low and releases the lines.
	Close() error
}

// Sink mirrors the light onto GPIO lamps.
type Sink struct {
	lamps Lamps
	light domain.Light
}

var _ ports.DisplaySink = (*Sink)(nil)

// NewSink creates a Sink driving lamps.
func NewSink(lamps Lamps) *Sink {
	return &Sink{lamps: lamps, light: domain.LightOff}
}

func (s *Sink) Emit(event domain.Event) {
	switch event.Kind {
	case domain.EventLightSet:
		s.light = event.Light
		s.drive(event.Light == domain.LightGreen, event.Light == domain.LightYellow, event.Light == domain.LightRed)
	case domain.EventFlashToggle:
		// Flashing is only ever on the yellow lamp
		s.light = domain.LightYellow
		s.drive(false, event.FlashOn, false)
	}
}

func (s *Sink) drive(green, yellow, red bool) {
	if err := s.lamps.Set(green, yellow, red); err != nil {
		logging.Logger.Warn("Failed to drive GPIO lamps", "light", s.light, "error", err)
	}
}
