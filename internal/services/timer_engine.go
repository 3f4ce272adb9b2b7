package services

import (
	"fmt"
	"time"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// TickInterval is the nominal cadence of the countdown
const TickInterval = 100 * time.Millisecond

// TimerEngine runs the hold → warning → done sequence.
// All methods must be called from the scheduler's event loop.
type TimerEngine struct {
	cfg       domain.TimerConfig
	flash     ports.Handle
	flashOn   bool
	run       domain.TimerConfig
	scheduler ports.Scheduler
	sink      ports.DisplaySink
	state     domain.TimerState
	tick      ports.Handle
}

// NewTimerEngine creates an idle engine
func NewTimerEngine(
	scheduler ports.Scheduler,
	sink ports.DisplaySink,
	cfg domain.TimerConfig,
) (*TimerEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timer config: %w", err)
	}
	return &TimerEngine{
		cfg:       cfg,
		scheduler: scheduler,
		sink:      sink,
		state:     domain.TimerState{Phase: domain.PhaseIdle, Mode: domain.HoldGreen},
	}, nil
}

// State returns a copy of the current run state
func (e *TimerEngine) State() domain.TimerState {
	return e.state
}

// Config returns the configuration the next run will use
func (e *TimerEngine) Config() domain.TimerConfig {
	return e.cfg
}

// IsActive reports whether a run is holding or warning
func (e *TimerEngine) IsActive() bool {
	return e.state.Phase.IsActive()
}

// SetConfig replaces the configuration for the next run.
// A run in progress keeps the configuration it started with.
func (e *TimerEngine) SetConfig(cfg domain.TimerConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid timer config: %w", err)
	}
	e.cfg = cfg
	logging.Logger.Debug("Timer config updated",
		"hold", cfg.HoldDuration,
		"warn", cfg.WarnDuration,
		"flash_interval", cfg.FlashInterval)
	return nil
}

// Start begins a run holding mode's color. It returns false while a run is active.
func (e *TimerEngine) Start(mode domain.HoldColor) bool {
	if e.IsActive() {
		logging.Logger.Debug("Ignoring start, timer already active", "phase", e.state.Phase)
		return false
	}

	e.cancelSources()
	e.run = e.cfg
	e.state = domain.TimerState{
		Mode:      mode,
		Phase:     domain.PhaseHolding,
		Remaining: e.run.HoldDuration,
	}

	logging.Logger.Info("Timer started", "mode", mode, "hold", e.run.HoldDuration, "warn", e.run.WarnDuration)
	e.emit(domain.LightSet(mode.Light()))
	e.emit(domain.TimerStarted(mode))
	e.emit(domain.Tick(domain.PhaseHolding, e.state.Remaining, e.run.HoldDuration))

	e.tick = e.scheduler.Every(TickInterval, func() { e.Tick(TickInterval) })
	return true
}

// Pause freezes the countdown and the flashing
func (e *TimerEngine) Pause() bool {
	if !e.IsActive() || e.state.Paused {
		return false
	}
	e.state.Paused = true
	logging.Logger.Debug("Timer paused", "phase", e.state.Phase, "remaining", e.state.Remaining)
	e.emit(domain.TimerPaused(e.state.Phase, e.state.Remaining))
	return true
}

// Resume continues a paused run
func (e *TimerEngine) Resume() bool {
	if !e.IsActive() || !e.state.Paused {
		return false
	}
	e.state.Paused = false
	logging.Logger.Debug("Timer resumed", "phase", e.state.Phase, "remaining", e.state.Remaining)
	e.emit(domain.TimerResumed(e.state.Phase, e.state.Remaining))
	return true
}

// TogglePause pauses a running timer or resumes a paused one
func (e *TimerEngine) TogglePause() bool {
	if e.state.Paused {
		return e.Resume()
	}
	return e.Pause()
}

// Tick consumes delta of the current phase
func (e *TimerEngine) Tick(delta time.Duration) {
	if !e.IsActive() || e.state.Paused {
		return
	}

	e.state.Remaining -= delta
	if e.state.Remaining > 0 {
		e.emit(domain.Tick(e.state.Phase, e.state.Remaining, e.run.TotalFor(e.state.Phase)))
		return
	}

	e.state.Remaining = 0
	e.advance()
}

func (e *TimerEngine) advance() {
	switch e.state.Phase {
	case domain.PhaseHolding:
		e.state.Phase = domain.PhaseWarning
		e.state.Remaining = e.run.WarnDuration
		e.flashOn = true

		logging.Logger.Info("Timer entering warning phase", "mode", e.state.Mode, "warn", e.run.WarnDuration)
		e.emit(domain.PhaseChanged(domain.PhaseWarning, e.state.Mode))
		e.emit(domain.LightSet(domain.LightYellow))
		e.emit(domain.Tick(domain.PhaseWarning, e.state.Remaining, e.run.WarnDuration))

		e.flash = e.scheduler.Every(e.run.FlashInterval, e.toggleFlash)

	case domain.PhaseWarning:
		e.cancelSources()
		e.state.Phase = domain.PhaseDone
		e.state.Paused = false

		logging.Logger.Info("Timer completed", "mode", e.state.Mode, "final_light", e.state.Mode.Complement())
		e.emit(domain.PhaseChanged(domain.PhaseDone, e.state.Mode))
		e.emit(domain.LightSet(e.state.Mode.Complement()))
		e.emit(domain.TimerCompleted(e.state.Mode))
	}
}

func (e *TimerEngine) toggleFlash() {
	if e.state.Phase != domain.PhaseWarning || e.state.Paused {
		return
	}
	e.flashOn = !e.flashOn
	e.emit(domain.FlashToggle(e.flashOn))
}

// Stop abandons the run and returns to idle, leaving the light as it is
func (e *TimerEngine) Stop() bool {
	if e.state.Phase == domain.PhaseIdle {
		return false
	}
	e.cancelSources()
	e.reset()
	logging.Logger.Info("Timer stopped")
	e.emit(domain.TimerStopped())
	return true
}

// Clear returns to idle and turns the signal off
func (e *TimerEngine) Clear() {
	e.cancelSources()
	e.reset()
	logging.Logger.Info("Timer cleared")
	e.emit(domain.TimerCleared())
	e.emit(domain.LightSet(domain.LightOff))
}

func (e *TimerEngine) reset() {
	e.state = domain.TimerState{Phase: domain.PhaseIdle, Mode: e.state.Mode}
	e.flashOn = false
}

func (e *TimerEngine) cancelSources() {
	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}
	if e.flash != nil {
		e.flash.Cancel()
		e.flash = nil
	}
}

func (e *TimerEngine) emit(event domain.Event) {
	if e.sink != nil {
		e.sink.Emit(event)
	}
}
