package ui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/services"
)

// SettingsFormResult contains the outcome of the settings dialog
type SettingsFormResult struct {
	Cancelled   bool
	Error       error
	Preferences domain.Preferences
}

// SettingsForm edits the persisted timer preferences
type SettingsForm struct {
	Completed bool
	form      *huh.Form
	hold      string
	mode      domain.HoldColor
	prefs     domain.Preferences
	result    SettingsFormResult
	service   *services.PreferencesService
	volume    string
	warn      string
}

// NewSettingsForm creates a settings form pre-filled with current
func NewSettingsForm(service *services.PreferencesService, current domain.Preferences) *SettingsForm {
	sf := &SettingsForm{
		hold:    current.HoldDuration.String(),
		mode:    current.Mode,
		prefs:   current,
		service: service,
		volume:  strconv.FormatFloat(current.Volume, 'f', -1, 64),
		warn:    current.WarnDuration.String(),
	}

	validateDuration := func(s string) error {
		_, err := services.ParseDurationMillis(s)
		return err
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hold duration").
				Description("Milliseconds or a duration like 30s or 2m").
				Value(&sf.hold).
				Validate(validateDuration),
			huh.NewInput().
				Title("Warning duration").
				Description("How long yellow flashes before the light changes").
				Value(&sf.warn).
				Validate(validateDuration),
			huh.NewSelect[domain.HoldColor]().
				Title("Default hold color").
				Options(
					huh.NewOption("Green", domain.HoldGreen),
					huh.NewOption("Red", domain.HoldRed),
				).
				Value(&sf.mode),
			huh.NewInput().
				Title("Volume").
				Description("0 mutes, 1 is full volume").
				Value(&sf.volume).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v < 0 || v > 1 {
						return fmt.Errorf("volume must be between 0 and 1")
					}
					return nil
				}),
		),
	)

	return sf
}

func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
		if err := sf.save(); err != nil {
			logging.Logger.Error("Failed to save settings", "error", err)
			sf.result.Error = err
		}
		return sf, nil
	}

	return sf, cmd
}

func (sf *SettingsForm) View() string {
	return sf.form.View()
}

// Result returns the form result
func (sf *SettingsForm) Result() SettingsFormResult {
	return sf.result
}

func (sf *SettingsForm) save() error {
	prefs := sf.prefs
	prefs.Hotkeys = sf.prefs.Hotkeys.Clone()

	var err error
	if prefs.HoldDuration, err = services.ParseDurationMillis(sf.hold); err != nil {
		return err
	}
	if prefs.WarnDuration, err = services.ParseDurationMillis(sf.warn); err != nil {
		return err
	}
	if prefs.Volume, err = strconv.ParseFloat(sf.volume, 64); err != nil {
		return fmt.Errorf("invalid volume: %w", err)
	}
	prefs.Mode = sf.mode

	if err := sf.service.Save(context.Background(), prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	logging.Logger.Info("Preferences saved",
		"hold", prefs.HoldDuration,
		"warn", prefs.WarnDuration,
		"mode", prefs.Mode,
		"volume", prefs.Volume)
	sf.result.Preferences = prefs
	return nil
}
