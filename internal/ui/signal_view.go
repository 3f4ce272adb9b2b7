package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/ports"
	"github.com/renato0307/stoplight/internal/theme"
)

const lampGlyph = "●"

// SignalView renders the signal head from display events.
// It holds only what the events told it; the engine owns the real state.
type SignalView struct {
	bar       progress.Model
	flashOn   bool
	light     domain.Light
	mode      domain.HoldColor
	paused    bool
	phase     domain.Phase
	rebind    *rebindPrompt
	remaining time.Duration
	status    string
	total     time.Duration
}

// rebindPrompt is the state of an in-flight rebind as seen by the view
type rebindPrompt struct {
	action      domain.Action
	prior       domain.Combo
	secondsLeft int
}

var _ ports.DisplaySink = (*SignalView)(nil)

// NewSignalView creates a view showing an idle, dark signal
func NewSignalView() *SignalView {
	return &SignalView{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		light: domain.LightOff,
		phase: domain.PhaseIdle,
	}
}

// Emit implements ports.DisplaySink
func (v *SignalView) Emit(event domain.Event) {
	switch event.Kind {
	case domain.EventLightSet:
		v.light = event.Light
		v.flashOn = event.Light == domain.LightYellow
	case domain.EventFlashToggle:
		v.light = domain.LightYellow
		v.flashOn = event.FlashOn
	case domain.EventPhaseChanged:
		v.phase = event.Phase
	case domain.EventTimerStarted:
		v.mode = event.Mode
		v.phase = domain.PhaseHolding
		v.paused = false
		v.status = ""
	case domain.EventTimerPaused:
		v.paused = true
		v.remaining = event.Remaining
	case domain.EventTimerResumed:
		v.paused = false
		v.remaining = event.Remaining
	case domain.EventTimerStopped, domain.EventTimerCleared:
		v.phase = domain.PhaseIdle
		v.paused = false
		v.remaining = 0
		v.total = 0
	case domain.EventTimerCompleted:
		v.phase = domain.PhaseDone
		v.paused = false
		v.remaining = 0
		v.status = "Time is up"
	case domain.EventTick:
		v.phase = event.Phase
		v.remaining = event.Remaining
		v.total = event.Total
	case domain.EventRebindBegan:
		v.rebind = &rebindPrompt{action: event.Action, prior: event.Combo, secondsLeft: event.SecondsLeft}
	case domain.EventRebindCountdown:
		if v.rebind != nil {
			v.rebind.secondsLeft = event.SecondsLeft
		}
	case domain.EventRebindSucceeded:
		v.rebind = nil
		v.status = fmt.Sprintf("%s bound to %s", event.Action, event.Combo)
	case domain.EventRebindFailed:
		v.rebind = nil
		v.status = describeRebindFailure(event)
	case domain.EventRebindCancelled:
		v.rebind = nil
		if event.Reason == domain.CancelReasonTimeout {
			v.status = fmt.Sprintf("Rebind of %s timed out", event.Action)
		} else {
			v.status = fmt.Sprintf("Rebind of %s cancelled", event.Action)
		}
	}
}

func describeRebindFailure(event domain.Event) string {
	switch {
	case errors.Is(event.Err, domain.ErrRegistrationConflict):
		return fmt.Sprintf("Cannot bind %s: %v", event.Action, event.Err)
	case errors.Is(event.Err, domain.ErrKeyUnavailable):
		return fmt.Sprintf("%s is not available: %v", event.Combo, event.Err)
	case event.Err != nil:
		return fmt.Sprintf("Rebind of %s failed: %v", event.Action, event.Err)
	}
	return fmt.Sprintf("Rebind of %s failed", event.Action)
}

// Capturing reports whether a rebind prompt is showing
func (v *SignalView) Capturing() bool {
	return v.rebind != nil
}

// Status returns the last notice shown under the signal
func (v *SignalView) Status() string {
	return v.status
}

// PhaseLabel is the one-word summary shown above the countdown
func (v *SignalView) PhaseLabel() string {
	if v.paused {
		return "PAUSED"
	}
	switch v.phase {
	case domain.PhaseHolding:
		return strings.ToUpper(string(v.mode))
	case domain.PhaseWarning:
		return "WARNING"
	}
	return "READY"
}

// View renders the signal head with countdown and progress bar
func (v *SignalView) View(width int) string {
	lamps := []string{
		v.renderLamp(theme.ColorLampRed, v.light == domain.LightRed),
		v.renderLamp(theme.ColorLampYellow, v.light == domain.LightYellow && v.flashOn),
		v.renderLamp(theme.ColorLampGreen, v.light == domain.LightGreen),
	}
	head := theme.HousingStyle.Render(strings.Join(lamps, "\n"))

	labelStyle := theme.PhaseLabelStyle
	if v.paused {
		labelStyle = theme.PausedLabelStyle
	}

	info := []string{labelStyle.Render(v.PhaseLabel())}
	if v.phase.IsActive() || v.paused {
		info = append(info, theme.CountdownStyle.Render(domain.FormatCountdown(v.remaining)))
		barWidth := width - lipgloss.Width(head) - 6
		if barWidth > 40 {
			barWidth = 40
		}
		if barWidth > 10 {
			v.bar.Width = barWidth
			info = append(info, v.bar.ViewAs(domain.Progress(v.total, v.remaining)))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Center, head, "   ", strings.Join(info, "\n\n"))
	if v.status != "" {
		body += "\n\n" + theme.StatusLineStyle.Render(v.status)
	}
	return body
}

func (v *SignalView) renderLamp(color theme.Color, lit bool) string {
	return theme.LampStyle(color, lit).Render(lampGlyph)
}

// RebindView renders the capture prompt, empty when no rebind is active
func (v *SignalView) RebindView() string {
	if v.rebind == nil {
		return ""
	}
	lines := []string{
		theme.PromptStyle.Render(fmt.Sprintf("Press a new key for '%s'", v.rebind.action)),
		"",
	}
	if !v.rebind.prior.IsZero() {
		lines = append(lines, theme.HelpDescStyle.Render("currently "+v.rebind.prior.String()))
	}
	lines = append(lines,
		theme.CountdownStyle.Render(fmt.Sprintf("%ds", v.rebind.secondsLeft)),
		"",
		theme.HelpDescStyle.Render("esc to cancel"),
	)
	return theme.OverlayStyle.Render(strings.Join(lines, "\n"))
}
