//go:build windows

package sound

import "github.com/renato0307/stoplight/internal/ports"

// cueCommands plays system sounds on Windows using PowerShell.
// SystemSounds ignore volume; the mixer level applies.
func cueCommands(cue string, volume float64) []command {
	var soundCommands []string

	switch cue {
	case ports.CueTick:
		soundCommands = []string{"[System.Media.SystemSounds]::Asterisk.Play()"}
	case ports.CueComplete:
		soundCommands = []string{"[System.Media.SystemSounds]::Exclamation.Play()", "[System.Media.SystemSounds]::Beep.Play()"}
	case ports.CueError:
		soundCommands = []string{"[System.Media.SystemSounds]::Hand.Play()", "[System.Media.SystemSounds]::Beep.Play()"}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	cmds := make([]command, 0, len(soundCommands))
	for _, c := range soundCommands {
		cmds = append(cmds, command{name: "powershell", args: []string{"-c", c}})
	}
	return cmds
}
