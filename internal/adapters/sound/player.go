package sound

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// command is one way of playing a cue on the current platform
type command struct {
	args []string
	name string
}

// Player implements ports.SoundPlayer by shelling out to the platform's
// audio tool, falling back to the terminal bell
type Player struct {
	bell  io.Writer
	start func(c command) error
}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a player that rings the bell on stdout as a last resort
func NewPlayer() *Player {
	return &Player{bell: os.Stdout, start: startDetached}
}

// WithBell returns a copy of the player that rings the bell on w
func (p *Player) WithBell(w io.Writer) *Player {
	return &Player{bell: w, start: p.start}
}

// PlayCue starts playback and returns without waiting for it to finish.
// Platform-specific commands are in player_*.go files with build tags.
func (p *Player) PlayCue(cue string, volume float64) error {
	volume = clampVolume(volume)
	for _, c := range cueCommands(cue, volume) {
		if err := p.start(c); err == nil {
			logging.Logger.Debug("Playing cue", "cue", cue, "cmd", c.name, "volume", volume)
			return nil
		}
	}
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}

func startDetached(c command) error {
	cmd := exec.Command(c.name, c.args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
