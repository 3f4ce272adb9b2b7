package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/stoplight/internal/adapters/keys"
	"github.com/renato0307/stoplight/internal/adapters/scheduler"
	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
	"github.com/renato0307/stoplight/internal/services"
	"github.com/renato0307/stoplight/internal/theme"
)

type uiState int

const (
	stateSignal uiState = iota
	stateHelp
	stateRebindPicker
	stateSettings
)

// ModelConfig holds everything needed to build a Model
type ModelConfig struct {
	DevMode         bool                     // Shows version info in headers
	ErrorClearDelay time.Duration            // How long errors stay on screen
	FlashInterval   time.Duration            // Warning flash period, 0 for the default
	Keys            config.KeyBindingsConfig // Control key overrides
	Player          ports.SoundPlayer        // nil disables sound cues
	Preferences     *services.PreferencesService
	Sinks           []ports.DisplaySink // Extra mirrors such as MQTT or GPIO
}

type Model struct {
	cues          *services.SoundCues // nil when sound is disabled
	devMode       bool
	dispatcher    *services.Dispatcher
	engine        *services.TimerEngine
	errorManager  *ErrorManager
	flashInterval time.Duration
	height        int
	help          help.Model
	helpScreen    *Dialog
	keys          KeyMap
	prefs         domain.Preferences
	prefsService  *services.PreferencesService
	rebind        *services.RebindCoordinator
	rebindPicker  *Dialog
	registry      *services.HotkeyRegistry
	scheduler     *scheduler.Loop
	settingsForm  *Dialog
	signal        *SignalView
	state         uiState
	width         int
}

// NewModel wires a signal engine, hotkey registry and rebind coordinator
// onto a fresh scheduler loop. Each Model is an independent signal.
func NewModel(cfg ModelConfig) (*Model, error) {
	errorManager := NewErrorManager(cfg.ErrorClearDelay)

	prefs, err := cfg.Preferences.Load(context.Background())
	if err != nil {
		logging.Logger.Warn("Failed to load preferences", "error", err)
		errorManager.SetError(fmt.Errorf("failed to load preferences: %w", err))
		prefs = domain.DefaultPreferences()
	}

	keyMap := NewKeyMap(cfg.Keys)
	table := keys.NewTable()
	for combo, owner := range keyMap.ReservedCombos() {
		table.Reserve(combo, owner)
	}

	signal := NewSignalView()
	fanout := services.NewFanout(signal)
	var cues *services.SoundCues
	if cfg.Player != nil {
		cues = services.NewSoundCues(cfg.Player, prefs.Volume)
		fanout.Add(cues)
	}
	for _, sink := range cfg.Sinks {
		fanout.Add(sink)
	}

	loop := scheduler.NewLoop()
	engine, err := services.NewTimerEngine(loop, fanout, prefs.TimerConfig(cfg.FlashInterval))
	if err != nil {
		loop.Close()
		return nil, fmt.Errorf("failed to create timer engine: %w", err)
	}

	registry := services.NewHotkeyRegistry(table)
	if err := registry.RegisterAll(prefs.Hotkeys); err != nil {
		logging.Logger.Warn("Saved hotkeys rejected, using defaults", "error", err)
		errorManager.SetError(fmt.Errorf("saved hotkeys rejected, using defaults: %w", err))
		if err := registry.RegisterAll(domain.DefaultHotkeys()); err != nil {
			loop.Close()
			return nil, fmt.Errorf("failed to register default hotkeys: %w", err)
		}
	}

	rebind := services.NewRebindCoordinator(registry, loop, fanout)
	rebind.SetPersistHook(func(m domain.HotkeyMap) error {
		return cfg.Preferences.SaveHotkeys(context.Background(), m)
	})

	return &Model{
		cues:          cues,
		devMode:       cfg.DevMode,
		dispatcher:    services.NewDispatcher(engine, registry, rebind, fanout),
		engine:        engine,
		errorManager:  errorManager,
		flashInterval: cfg.FlashInterval,
		help:          help.New(),
		keys:          keyMap,
		prefs:         prefs,
		prefsService:  cfg.Preferences,
		rebind:        rebind,
		registry:      registry,
		scheduler:     loop,
		signal:        signal,
		state:         stateSignal,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForFired(m.scheduler)}
	if m.errorManager.HasError() {
		cmds = append(cmds, m.errorManager.ClearAfterDelay())
	}
	return tea.Batch(cmds...)
}

// waitForFired delivers the next scheduler callback to the update loop
func waitForFired(loop *scheduler.Loop) tea.Cmd {
	return func() tea.Msg {
		select {
		case fired := <-loop.Fired():
			return firedMsg{fired: fired}
		case <-loop.Closed():
			return schedulerClosedMsg{}
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Timers keep running while dialogs are open
	switch msg := msg.(type) {
	case firedMsg:
		msg.fired.Run()
		return m, waitForFired(m.scheduler)
	case schedulerClosedMsg:
		return m, nil
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	switch m.state {
	case stateHelp:
		return m.updateHelp(msg)
	case stateRebindPicker:
		return m.updateRebindPicker(msg)
	case stateSettings:
		return m.updateSettings(msg)
	}
	return m.updateSignal(msg)
}

func (m *Model) updateSignal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Bound hotkeys and rebind capture come first; control keys are reserved
		// in the key table so they can never be bound
		if m.dispatcher.HandleKey(keyEventFromMsg(msg)) {
			return m, nil
		}
		if control, ok := m.keys.Match(msg); ok {
			return m.updateSignal(control)
		}
		return m, nil

	case QuitMsg:
		m.Close()
		return m, tea.Quit

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys, m.registry.Bindings()), m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case ShowSettingsMsg:
		current := m.prefs
		current.Hotkeys = m.registry.Bindings()
		m.settingsForm = NewDialog("Timer Settings", NewSettingsForm(m.prefsService, current), m.devMode)
		m.state = stateSettings
		return m, m.settingsForm.Init()

	case ShowRebindPickerMsg:
		m.rebindPicker = NewDialog("Rebind Hotkey", NewRebindPicker(m.registry.Bindings()), m.devMode)
		m.state = stateRebindPicker
		return m, m.rebindPicker.Init()

	case TogglePauseMsg:
		return m, m.runCommand(services.Command{Kind: services.CommandTogglePause})
	case StopTimerMsg:
		return m, m.runCommand(services.Command{Kind: services.CommandStop})
	case ClearSignalMsg:
		return m, m.runCommand(services.Command{Kind: services.CommandClear})
	case BeginRebindMsg:
		return m, m.runCommand(services.BeginRebindCommand(msg.Action))
	}

	return m, nil
}

// runCommand hands a command to the dispatcher and surfaces any error
func (m *Model) runCommand(cmd services.Command) tea.Cmd {
	if err := m.dispatcher.Handle(cmd); err != nil {
		logging.Logger.Warn("Command failed", "kind", cmd.Kind, "error", err)
		m.errorManager.SetError(err)
		return m.errorManager.ClearAfterDelay()
	}
	return nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateSignal
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateRebindPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.rebindPicker.Update(msg)
	m.rebindPicker = updated.(*Dialog)

	if content, ok := m.rebindPicker.Content().(*RebindPicker); ok && content.Completed {
		result := content.Result()
		m.state = stateSignal
		m.rebindPicker = nil

		if result.Cancelled {
			return m, nil
		}
		return m.updateSignal(BeginRebindMsg{Action: result.Action})
	}

	return m, cmd
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.settingsForm.Update(msg)
	m.settingsForm = updated.(*Dialog)

	if content, ok := m.settingsForm.Content().(*SettingsForm); ok && content.Completed {
		result := content.Result()
		m.state = stateSignal
		m.settingsForm = nil

		if result.Error != nil {
			m.errorManager.SetError(result.Error)
			return m, m.errorManager.ClearAfterDelay()
		}
		if !result.Cancelled {
			m.applyPreferences(result.Preferences)
		}
		return m, nil
	}

	return m, cmd
}

// applyPreferences takes effect from the next timer run
func (m *Model) applyPreferences(prefs domain.Preferences) {
	m.prefs = prefs
	if err := m.engine.SetConfig(prefs.TimerConfig(m.flashInterval)); err != nil {
		logging.Logger.Error("Failed to apply timer config", "error", err)
		m.errorManager.SetError(err)
	}
	if m.cues != nil {
		m.cues.SetVolume(prefs.Volume)
	}
}

// Close cancels any rebind, turns the signal off and stops the scheduler.
// Safe to call more than once.
func (m *Model) Close() {
	m.rebind.Cancel()
	if m.engine.IsActive() || m.signal.light != domain.LightOff {
		m.engine.Clear()
	}
	m.scheduler.Close()
}

// Release stops the scheduler without touching signal state.
// Safe to call from any goroutine.
func (m *Model) Release() {
	m.scheduler.Close()
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateRebindPicker:
		if m.rebindPicker != nil {
			return m.rebindPicker.View()
		}
	case stateSettings:
		if m.settingsForm != nil {
			return m.settingsForm.View()
		}
	}

	view := renderHeader(m.devMode, "") + "\n"
	view += m.signal.View(m.width) + "\n\n"

	// Bottom section: error takes priority over the help bar
	if m.errorManager.HasError() {
		view += theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	} else {
		view += m.help.View(m.keys)
	}

	if m.signal.Capturing() {
		return compositeOverlay(view, m.signal.RebindView(), m.width, m.height)
	}
	return view
}
