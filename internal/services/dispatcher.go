package services

import (
	"fmt"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// CommandKind tags a Command
type CommandKind string

const (
	CommandBeginRebind  CommandKind = "begin_rebind"
	CommandCancelRebind CommandKind = "cancel_rebind"
	CommandClear        CommandKind = "clear"
	CommandSetLight     CommandKind = "set_light"
	CommandStartTimer   CommandKind = "start_timer"
	CommandStop         CommandKind = "stop"
	CommandTogglePause  CommandKind = "toggle_pause"
	CommandTrigger      CommandKind = "trigger"
)

// Command is a request from a bound key or a UI control
type Command struct {
	Action domain.Action
	Kind   CommandKind
	Light  domain.Light
	Mode   domain.HoldColor
}

func TriggerCommand(a domain.Action) Command {
	return Command{Kind: CommandTrigger, Action: a}
}

func StartTimerCommand(mode domain.HoldColor) Command {
	return Command{Kind: CommandStartTimer, Mode: mode}
}

func SetLightCommand(l domain.Light) Command {
	return Command{Kind: CommandSetLight, Light: l}
}

func BeginRebindCommand(a domain.Action) Command {
	return Command{Kind: CommandBeginRebind, Action: a}
}

// Dispatcher routes commands and raw keys to the engine and the coordinator
type Dispatcher struct {
	engine   *TimerEngine
	rebind   *RebindCoordinator
	registry *HotkeyRegistry
	sink     ports.DisplaySink
}

// NewDispatcher creates a Dispatcher
func NewDispatcher(
	engine *TimerEngine,
	registry *HotkeyRegistry,
	rebind *RebindCoordinator,
	sink ports.DisplaySink,
) *Dispatcher {
	return &Dispatcher{
		engine:   engine,
		rebind:   rebind,
		registry: registry,
		sink:     sink,
	}
}

// Handle executes a command
func (d *Dispatcher) Handle(cmd Command) error {
	logging.Logger.Debug("Dispatching command", "kind", cmd.Kind, "action", cmd.Action)

	switch cmd.Kind {
	case CommandTrigger:
		return d.Trigger(cmd.Action)
	case CommandStartTimer:
		d.engine.Start(cmd.Mode)
	case CommandTogglePause:
		d.engine.TogglePause()
	case CommandStop:
		d.engine.Stop()
	case CommandClear:
		d.engine.Clear()
	case CommandSetLight:
		d.setLight(cmd.Light)
	case CommandBeginRebind:
		return d.rebind.Begin(cmd.Action)
	case CommandCancelRebind:
		if !d.rebind.Cancel() {
			return domain.ErrNoRebindSession
		}
	default:
		return fmt.Errorf("unknown command %q", cmd.Kind)
	}
	return nil
}

// Trigger runs the behavior bound to an action
func (d *Dispatcher) Trigger(action domain.Action) error {
	switch action {
	case domain.ActionGreen:
		d.setLight(domain.LightGreen)
	case domain.ActionYellow:
		d.setLight(domain.LightYellow)
	case domain.ActionRed:
		d.setLight(domain.LightRed)
	case domain.ActionTimer:
		d.startOrToggle(domain.HoldGreen)
	case domain.ActionTimerRed:
		d.startOrToggle(domain.HoldRed)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
	}
	return nil
}

// HandleKey routes a raw key. During a rebind the coordinator gets it;
// otherwise a registered combo triggers its action. It returns true when consumed.
func (d *Dispatcher) HandleKey(event domain.KeyEvent) bool {
	if d.rebind.IsCapturing() {
		return d.rebind.HandleKey(event)
	}

	combo, ok := event.Combo()
	if !ok {
		return false
	}
	action, ok := d.registry.Lookup(combo)
	if !ok {
		return false
	}
	if err := d.Trigger(action); err != nil {
		logging.Logger.Error("Failed to trigger action", "action", action, "error", err)
	}
	return true
}

// A manual light request while a run is active pauses the run instead
func (d *Dispatcher) setLight(l domain.Light) {
	if d.engine.IsActive() {
		d.engine.Pause()
		return
	}
	d.sink.Emit(domain.LightSet(l))
}

func (d *Dispatcher) startOrToggle(mode domain.HoldColor) {
	if d.engine.IsActive() {
		d.engine.TogglePause()
		return
	}
	d.engine.Start(mode)
}
