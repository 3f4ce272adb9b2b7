//go:build darwin

package sound

import (
	"strconv"

	"github.com/renato0307/stoplight/internal/ports"
)

// cueCommands plays system sounds on macOS using afplay
func cueCommands(cue string, volume float64) []command {
	var soundFiles []string

	switch cue {
	case ports.CueTick:
		soundFiles = []string{"/System/Library/Sounds/Tink.aiff", "/System/Library/Sounds/Pop.aiff"}
	case ports.CueComplete:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Hero.aiff"}
	case ports.CueError:
		soundFiles = []string{"/System/Library/Sounds/Basso.aiff", "/System/Library/Sounds/Funk.aiff"}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	vol := strconv.FormatFloat(volume, 'f', 2, 64)
	var cmds []command
	for _, f := range soundFiles {
		if fileExists(f) {
			cmds = append(cmds, command{name: "afplay", args: []string{"-v", vol, f}})
		}
	}
	return cmds
}
