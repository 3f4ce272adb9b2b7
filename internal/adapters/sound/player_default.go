//go:build !darwin && !linux && !windows

package sound

// cueCommands has nothing to offer on unsupported platforms; the bell is used
func cueCommands(cue string, volume float64) []command {
	return nil
}
