package domain

import "time"

// EventKind tags a display event
type EventKind string

const (
	EventLightSet        EventKind = "light_set"
	EventFlashToggle     EventKind = "flash_toggle"
	EventPhaseChanged    EventKind = "phase_changed"
	EventTimerStarted    EventKind = "timer_started"
	EventTimerPaused     EventKind = "timer_paused"
	EventTimerResumed    EventKind = "timer_resumed"
	EventTimerStopped    EventKind = "timer_stopped"
	EventTimerCleared    EventKind = "timer_cleared"
	EventTimerCompleted  EventKind = "timer_completed"
	EventTick            EventKind = "tick"
	EventRebindBegan     EventKind = "rebind_began"
	EventRebindCountdown EventKind = "rebind_countdown"
	EventRebindSucceeded EventKind = "rebind_succeeded"
	EventRebindFailed    EventKind = "rebind_failed"
	EventRebindCancelled EventKind = "rebind_cancelled"
)

// Cancel reasons carried by EventRebindCancelled
const (
	CancelReasonOperator = "cancelled"
	CancelReasonTimeout  = "timeout"
)

// Event is a display event. Only the fields relevant to Kind are set.
type Event struct {
	Action      Action
	Combo       Combo
	Err         error
	FlashOn     bool
	Kind        EventKind
	Light       Light
	Mode        HoldColor
	Phase       Phase
	Reason      string
	Remaining   time.Duration
	SecondsLeft int
	Session     string // Rebind session ID, set on rebind events
	Total       time.Duration
}

// IsTimer reports whether the event belongs to the timer engine
func (e Event) IsTimer() bool {
	switch e.Kind {
	case EventRebindBegan, EventRebindCountdown, EventRebindSucceeded, EventRebindFailed, EventRebindCancelled:
		return false
	}
	return true
}

// Progress returns the elapsed fraction carried by a tick event
func (e Event) Progress() float64 {
	return Progress(e.Total, e.Remaining)
}

func LightSet(l Light) Event {
	return Event{Kind: EventLightSet, Light: l}
}

func FlashToggle(on bool) Event {
	return Event{Kind: EventFlashToggle, FlashOn: on, Light: LightYellow}
}

func PhaseChanged(p Phase, mode HoldColor) Event {
	return Event{Kind: EventPhaseChanged, Phase: p, Mode: mode}
}

func TimerStarted(mode HoldColor) Event {
	return Event{Kind: EventTimerStarted, Mode: mode, Phase: PhaseHolding}
}

func TimerPaused(p Phase, remaining time.Duration) Event {
	return Event{Kind: EventTimerPaused, Phase: p, Remaining: remaining}
}

func TimerResumed(p Phase, remaining time.Duration) Event {
	return Event{Kind: EventTimerResumed, Phase: p, Remaining: remaining}
}

func TimerStopped() Event {
	return Event{Kind: EventTimerStopped, Phase: PhaseIdle}
}

func TimerCleared() Event {
	return Event{Kind: EventTimerCleared, Phase: PhaseIdle}
}

func TimerCompleted(mode HoldColor) Event {
	return Event{Kind: EventTimerCompleted, Mode: mode, Phase: PhaseDone, Light: mode.Complement()}
}

func Tick(p Phase, remaining, total time.Duration) Event {
	return Event{Kind: EventTick, Phase: p, Remaining: remaining, Total: total}
}

func RebindBegan(a Action, prior Combo, secondsLeft int) Event {
	return Event{Kind: EventRebindBegan, Action: a, Combo: prior, SecondsLeft: secondsLeft}
}

func RebindCountdown(a Action, secondsLeft int) Event {
	return Event{Kind: EventRebindCountdown, Action: a, SecondsLeft: secondsLeft}
}

func RebindSucceeded(a Action, c Combo) Event {
	return Event{Kind: EventRebindSucceeded, Action: a, Combo: c}
}

func RebindFailed(a Action, c Combo, err error) Event {
	return Event{Kind: EventRebindFailed, Action: a, Combo: c, Err: err}
}

func RebindCancelled(a Action, reason string) Event {
	return Event{Kind: EventRebindCancelled, Action: a, Reason: reason}
}
