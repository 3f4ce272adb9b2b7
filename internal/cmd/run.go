package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/stoplight/internal/adapters/gpio"
	"github.com/renato0307/stoplight/internal/adapters/lock"
	"github.com/renato0307/stoplight/internal/adapters/mqtt"
	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
	"github.com/renato0307/stoplight/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	NoSound         bool `help:"Disable sound cues"`
	NoMQTT          bool `help:"Do not publish to the configured MQTT broker" name:"no-mqtt"`
	NoGPIO          bool `help:"Do not drive the configured GPIO lamps" name:"no-gpio"`
}

// Constructors for the hardware and network sinks, replaced in tests
var (
	newPublisher = func(ctx context.Context, broker, clientID string) (mqtt.Publisher, error) {
		return mqtt.NewRealPublisher(ctx, broker, clientID)
	}
	newLamps = func(ctx context.Context, chip string, pins gpio.Pins) (gpio.Lamps, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return gpio.NewRealLamps(chip, pins)
	}
)

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	if r.ErrorClearDelay == config.DefaultErrorClearDelay {
		r.ErrorClearDelay = int(settings.GetErrorClearDelay().Seconds())
	}

	logging.Logger.Info("Starting stoplight TUI")

	// GPIO lines and the preferences database belong to one process
	instanceLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, lock.ErrHeld) {
			return fmt.Errorf("stoplight is already running (lock %s)", config.GetLockPath())
		}
		return err
	}
	defer instanceLock.Release()

	keysConfig, err := validatedKeys(settings)
	if err != nil {
		return err
	}

	mqttSettings, gpioSettings := settings.MQTT, settings.GPIO
	if r.NoMQTT {
		mqttSettings = nil
	}
	if r.NoGPIO {
		gpioSettings = nil
	}
	// Ctrl+C while the broker is still connecting aborts the start-up
	startCtx, stopStart := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	sinks, closeSinks, err := startSinks(startCtx, mqttSettings, gpioSettings)
	stopStart()
	if err != nil {
		return err
	}
	defer closeSinks()

	var player ports.SoundPlayer
	if !r.NoSound && settings.IsSoundEnabled() {
		player = cli.Container.SoundPlayer
	}

	model, err := ui.NewModel(ui.ModelConfig{
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		FlashInterval:   settings.GetFlashInterval(),
		Keys:            keysConfig,
		Player:          player,
		Preferences:     cli.Container.Preferences,
		Sinks:           sinks,
	})
	if err != nil {
		return fmt.Errorf("failed to create signal: %w", err)
	}
	defer model.Close()

	logging.Logger.Debug("Initializing Bubble Tea program", "extra_sinks", len(sinks))
	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// validatedKeys returns the control key overrides from settings.json
func validatedKeys(settings *config.Settings) (config.KeyBindingsConfig, error) {
	if settings == nil || settings.Keys == nil {
		return nil, nil
	}
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return settings.Keys, nil
}

// startSinks connects the configured MQTT broker and GPIO lamps concurrently.
// A sink whose hardware or broker is unavailable is logged and left out; the
// signal still runs. Only cancellation of ctx is returned as an error.
func startSinks(ctx context.Context, mqttSettings *config.MQTTSettings, gpioSettings *config.GPIOSettings) ([]ports.DisplaySink, func(), error) {
	var (
		closers []func()
		mu      sync.Mutex
		sinks   []ports.DisplaySink
	)
	add := func(sink ports.DisplaySink, closer func()) {
		mu.Lock()
		defer mu.Unlock()
		sinks = append(sinks, sink)
		closers = append(closers, closer)
	}
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	if mqttSettings.Enabled() {
		g.Go(func() error {
			pub, err := newPublisher(gctx, mqttSettings.Broker, mqttSettings.ClientID)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return fmt.Errorf("MQTT start-up interrupted: %w", ctxErr)
				}
				logging.Logger.Warn("MQTT sink disabled", "broker", mqttSettings.Broker, "error", err)
				return nil
			}
			sink := mqtt.NewSink(pub, mqttSettings.Topic)
			add(sink, func() {
				if err := pub.Close(); err != nil {
					logging.Logger.Warn("Failed to close MQTT publisher", "error", err)
				}
			})
			logging.Logger.Info("MQTT sink started", "topic", sink.EventsTopic())
			return nil
		})
	}

	if gpioSettings != nil {
		g.Go(func() error {
			pins := pinsFromSettings(gpioSettings)
			lamps, err := newLamps(gctx, gpioSettings.Chip, pins)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return fmt.Errorf("GPIO start-up interrupted: %w", ctxErr)
				}
				logging.Logger.Warn("GPIO sink disabled", "chip", gpioSettings.Chip, "error", err)
				return nil
			}
			add(gpio.NewSink(lamps), func() {
				if err := lamps.Close(); err != nil {
					logging.Logger.Warn("Failed to release GPIO lamps", "error", err)
				}
			})
			logging.Logger.Info("GPIO sink started", "green", pins.Green, "yellow", pins.Yellow, "red", pins.Red)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logging.Logger.Warn("Sink start-up cancelled", "error", err)
		closeAll()
		return nil, func() {}, err
	}

	return sinks, closeAll, nil
}

// pinsFromSettings overlays configured pins on the defaults
func pinsFromSettings(s *config.GPIOSettings) gpio.Pins {
	pins := gpio.DefaultPins
	if s.Green != nil {
		pins.Green = *s.Green
	}
	if s.Yellow != nil {
		pins.Yellow = *s.Yellow
	}
	if s.Red != nil {
		pins.Red = *s.Red
	}
	return pins
}
