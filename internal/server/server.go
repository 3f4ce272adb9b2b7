// Package server serves the stoplight TUI over SSH.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ui"
)

// ModelFactory builds an independent signal for one SSH session
type ModelFactory func() (*ui.Model, error)

// Server is the SSH front end. Every session gets its own signal.
type Server struct {
	address            string
	authorizedKeysPath string
	newModel           ModelFactory
	wishServer         *ssh.Server
}

// Config holds the server settings
type Config struct {
	AuthorizedKeysPath string // Defaults to ~/.ssh/authorized_keys
	HostKeyPath        string
	Host               string
	Port               int
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config, newModel ModelFactory) (*Server, error) {
	s := &Server{
		address:            net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port)),
		authorizedKeysPath: cfg.AuthorizedKeysPath,
		newModel:           newModel,
	}

	if s.authorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		s.authorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create host key directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authenticate),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.address
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

func (s *Server) authenticate(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := getKeyFingerprint(key)
	authorized := isKeyAuthorized(key, s.authorizedKeysPath)

	if authorized {
		logging.Logger.Info("SSH key authenticated",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	} else {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	}

	return authorized
}
