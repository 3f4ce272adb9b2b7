// Package mqtt mirrors the signal to an MQTT broker.
package mqtt

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// DefaultTopic is the topic prefix used when none is configured
const DefaultTopic = "stoplight"

// Publisher sends raw payloads to the broker.
type Publisher interface {
	// Publish sends payload to topic at QoS 0. It must not block on the network.
	Publish(topic string, retained bool, payload []byte) error

	// Close disconnects from the broker.
	Close() error
}

// Payload is the JSON envelope for every message.
type Payload struct {
	Signal SignalPayload `json:"signal"`
}

// SignalPayload describes one event or the current state.
type SignalPayload struct {
	Action      string `json:"action,omitempty"`
	Combo       string `json:"combo,omitempty"`
	Error       string `json:"error,omitempty"`
	Event       string `json:"event"`
	Light       string `json:"light,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Paused      *bool  `json:"paused,omitempty"`
	Phase       string `json:"phase,omitempty"`
	Reason      string `json:"reason,omitempty"`
	RemainingMs *int64 `json:"remaining_ms,omitempty"`
	Session     string `json:"session,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// FormatPayload creates the JSON payload for an event.
func FormatPayload(event domain.Event, at time.Time) ([]byte, error) {
	p := SignalPayload{
		Action:    string(event.Action),
		Event:     strings.ToUpper(string(event.Kind)),
		Light:     string(event.Light),
		Mode:      string(event.Mode),
		Phase:     string(event.Phase),
		Reason:    event.Reason,
		Session:   event.Session,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
	if !event.Combo.IsZero() {
		p.Combo = event.Combo.String()
	}
	if event.Err != nil {
		p.Error = event.Err.Error()
	}
	switch event.Kind {
	case domain.EventTimerPaused, domain.EventTimerResumed, domain.EventPhaseChanged:
		ms := event.Remaining.Milliseconds()
		p.RemainingMs = &ms
	}
	return json.Marshal(Payload{Signal: p})
}

// State is the retained snapshot of the signal.
type State struct {
	Light  domain.Light
	Mode   domain.HoldColor
	Paused bool
	Phase  domain.Phase
}

// FormatStatePayload creates the retained state payload.
func FormatStatePayload(s State, at time.Time) ([]byte, error) {
	paused := s.Paused
	return json.Marshal(Payload{Signal: SignalPayload{
		Event:     "STATE",
		Light:     string(s.Light),
		Mode:      string(s.Mode),
		Paused:    &paused,
		Phase:     string(s.Phase),
		Timestamp: at.UTC().Format(time.RFC3339),
	}})
}

// Sink publishes signal events on <topic>/events and keeps a retained
// snapshot on <topic>/state. Ticks and flash toggles are not published.
type Sink struct {
	now       func() time.Time
	publisher Publisher
	state     State
	topic     string
}

var _ ports.DisplaySink = (*Sink)(nil)

// NewSink creates a Sink publishing under topic
func NewSink(publisher Publisher, topic string) *Sink {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Sink{
		now:       time.Now,
		publisher: publisher,
		state:     State{Light: domain.LightOff, Phase: domain.PhaseIdle},
		topic:     strings.TrimSuffix(topic, "/"),
	}
}

// EventsTopic returns the topic events are published on
func (s *Sink) EventsTopic() string {
	return s.topic + "/events"
}

// StateTopic returns the retained state topic
func (s *Sink) StateTopic() string {
	return s.topic + "/state"
}

func (s *Sink) Emit(event domain.Event) {
	switch event.Kind {
	case domain.EventTick, domain.EventFlashToggle, domain.EventRebindCountdown:
		return
	}

	at := s.now()
	payload, err := FormatPayload(event, at)
	if err != nil {
		logging.Logger.Error("Failed to format MQTT payload", "event", event.Kind, "error", err)
		return
	}
	if err := s.publisher.Publish(s.EventsTopic(), false, payload); err != nil {
		logging.Logger.Warn("Failed to publish MQTT event", "event", event.Kind, "error", err)
	}

	if s.apply(event) {
		s.publishState(at)
	}
}

// apply folds an event into the snapshot and reports whether it changed
func (s *Sink) apply(event domain.Event) bool {
	before := s.state
	switch event.Kind {
	case domain.EventLightSet:
		s.state.Light = event.Light
	case domain.EventTimerStarted:
		s.state.Mode = event.Mode
		s.state.Phase = domain.PhaseHolding
		s.state.Paused = false
	case domain.EventPhaseChanged:
		s.state.Phase = event.Phase
		if event.Phase == domain.PhaseDone {
			s.state.Paused = false
		}
	case domain.EventTimerPaused:
		s.state.Paused = true
	case domain.EventTimerResumed:
		s.state.Paused = false
	case domain.EventTimerStopped, domain.EventTimerCleared:
		s.state.Phase = domain.PhaseIdle
		s.state.Paused = false
	}
	return s.state != before
}

func (s *Sink) publishState(at time.Time) {
	payload, err := FormatStatePayload(s.state, at)
	if err != nil {
		logging.Logger.Error("Failed to format MQTT state", "error", err)
		return
	}
	if err := s.publisher.Publish(s.StateTopic(), true, payload); err != nil {
		logging.Logger.Warn("Failed to publish MQTT state", "error", err)
	}
}
