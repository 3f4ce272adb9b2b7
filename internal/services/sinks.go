package services

import (
	"sync"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// Fanout forwards every event, in order, to each sink
type Fanout struct {
	sinks []ports.DisplaySink
}

// NewFanout creates a Fanout over sinks. Nil sinks are skipped.
func NewFanout(sinks ...ports.DisplaySink) *Fanout {
	f := &Fanout{}
	for _, s := range sinks {
		f.Add(s)
	}
	return f
}

// Add appends a sink
func (f *Fanout) Add(sink ports.DisplaySink) {
	if sink != nil {
		f.sinks = append(f.sinks, sink)
	}
}

func (f *Fanout) Emit(event domain.Event) {
	for _, s := range f.sinks {
		s.Emit(event)
	}
}

// SoundCues plays audio cues for signal events
type SoundCues struct {
	mu     sync.RWMutex
	player ports.SoundPlayer
	volume float64
}

// NewSoundCues creates a cue sink playing through player at volume
func NewSoundCues(player ports.SoundPlayer, volume float64) *SoundCues {
	return &SoundCues{player: player, volume: volume}
}

// SetVolume changes the cue volume; 0 mutes
func (s *SoundCues) SetVolume(volume float64) {
	s.mu.Lock()
	s.volume = volume
	s.mu.Unlock()
}

// Volume returns the cue volume
func (s *SoundCues) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

func (s *SoundCues) Emit(event domain.Event) {
	var cue string
	switch event.Kind {
	case domain.EventFlashToggle:
		if !event.FlashOn {
			return
		}
		cue = ports.CueTick
	case domain.EventTimerCompleted:
		cue = ports.CueComplete
	case domain.EventRebindFailed:
		cue = ports.CueError
	default:
		return
	}

	volume := s.Volume()
	if volume <= 0 {
		return
	}
	if err := s.player.PlayCue(cue, volume); err != nil {
		logging.Logger.Warn("Failed to play cue", "cue", cue, "error", err)
	}
}
