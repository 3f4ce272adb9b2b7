package ports

// Sound cues played by the signal
const (
	CueComplete = "complete"
	CueError    = "error"
	CueTick     = "tick"
)

// SoundPlayer plays short audio cues
type SoundPlayer interface {
	// PlayCue plays a named cue at a volume in [0,1] without blocking
	PlayCue(cue string, volume float64) error
}
