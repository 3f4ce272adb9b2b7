package cmd

import "github.com/renato0307/stoplight/internal/domain"

// PlaySoundCmd plays a signal cue
type PlaySoundCmd struct {
	Cue    string  `arg:"" optional:"" help:"Cue to play" enum:"complete,error,tick" default:"complete"`
	Volume float64 `help:"Volume between 0 and 1" default:"-1"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	volume := p.Volume
	if volume < 0 {
		volume = domain.DefaultVolume
	}
	return cli.Container.SoundPlayer.PlayCue(p.Cue, volume)
}
