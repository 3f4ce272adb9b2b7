package ui

import (
	"github.com/renato0307/stoplight/internal/adapters/scheduler"
	"github.com/renato0307/stoplight/internal/domain"
)

// Application messages, dispatched from control keys

// QuitMsg requests application exit
type QuitMsg struct{}

// ShowHelpMsg opens the help dialog
type ShowHelpMsg struct{}

// ShowSettingsMsg opens the settings dialog
type ShowSettingsMsg struct{}

// ShowRebindPickerMsg opens the action picker that starts a rebind
type ShowRebindPickerMsg struct{}

// Timer messages

// StopTimerMsg stops the running timer
type StopTimerMsg struct{}

// ClearSignalMsg stops the timer and turns the signal off
type ClearSignalMsg struct{}

// TogglePauseMsg pauses or resumes the running timer
type TogglePauseMsg struct{}

// BeginRebindMsg starts capturing a new combo for Action
type BeginRebindMsg struct {
	Action domain.Action
}

// firedMsg carries a scheduler callback onto the update loop
type firedMsg struct {
	fired scheduler.Fired
}

// schedulerClosedMsg is delivered once the scheduler stops
type schedulerClosedMsg struct{}
