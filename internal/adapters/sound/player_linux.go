//go:build linux

package sound

import (
	"fmt"

	"github.com/renato0307/stoplight/internal/ports"
)

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// cueCommands plays freedesktop sounds using paplay (PulseAudio) or aplay (ALSA)
func cueCommands(cue string, volume float64) []command {
	var names []string

	switch cue {
	case ports.CueTick:
		names = []string{"audio-volume-change", "message"}
	case ports.CueComplete:
		names = []string{"complete", "bell"}
	case ports.CueError:
		names = []string{"dialog-warning", "bell"}
	default:
		names = []string{"bell"}
	}

	// paplay volume is linear in [0, 65536]
	paVolume := fmt.Sprintf("--volume=%d", int(volume*65536))
	var cmds []command
	for _, n := range names {
		if oga := freedesktopSounds + n + ".oga"; fileExists(oga) {
			cmds = append(cmds, command{name: "paplay", args: []string{paVolume, oga}})
		}
		if wav := freedesktopSounds + n + ".wav"; fileExists(wav) {
			cmds = append(cmds, command{name: "aplay", args: []string{"-q", wav}})
		}
	}
	return cmds
}
