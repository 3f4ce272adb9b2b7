package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/stoplight/internal/logging"
)

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, err := s.newModel()
	if err != nil {
		logging.Logger.Error("Failed to create signal for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	// The context ends on quit and on a dropped connection alike
	startTime := time.Now()
	go func() {
		<-sess.Context().Done()
		model.Release()
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"duration", time.Since(startTime).String())
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
