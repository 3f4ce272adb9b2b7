package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/server"
	"github.com/renato0307/stoplight/internal/ui"
)

// DefaultSSHPort is the serve port when neither flag nor settings set one
const DefaultSSHPort = 2222

// ServeCmd serves an independent signal to every SSH session.
// Sessions share the preferences database but never the MQTT, GPIO or
// sound sinks, which belong to the host's own signal.
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file (default ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Address to listen on" default:"0.0.0.0"`
	Port           int    `help:"Port to listen on" default:"2222"`
}

// Run starts the SSH server and blocks until SIGINT or SIGTERM
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)

	keysConfig, err := validatedKeys(cli.settings)
	if err != nil {
		return err
	}

	newModel := func() (*ui.Model, error) {
		return ui.NewModel(ui.ModelConfig{
			ErrorClearDelay: cli.settings.GetErrorClearDelay(),
			FlashInterval:   cli.settings.GetFlashInterval(),
			Keys:            keysConfig,
			Preferences:     cli.Container.Preferences,
		})
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: s.AuthorizedKeys,
		HostKeyPath:        config.GetHostKeyPath(),
		Host:               s.Host,
		Port:               s.Port,
	}, newModel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving stoplight on %s\n", srv.Address())
	logging.Logger.Info("Serve started", "address", srv.Address())
	return srv.Run(ctx)
}

// applySettings fills flags still at their defaults from settings.json
func (s *ServeCmd) applySettings(settings *config.Settings) {
	if settings == nil || settings.SSH == nil {
		return
	}
	if s.Host == "0.0.0.0" && settings.SSH.Host != "" {
		s.Host = settings.SSH.Host
	}
	if s.Port == DefaultSSHPort && settings.SSH.Port != nil {
		s.Port = *settings.SSH.Port
	}
}
