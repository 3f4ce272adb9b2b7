package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Signal styles
var (
	HousingStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorHousing).
			Padding(0, 2)

	CountdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	PhaseLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSubtle)

	PausedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPaused)

	StatusLineStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// LampStyle returns the style for a lamp, lit or unlit
func LampStyle(color Color, lit bool) lipgloss.Style {
	if !lit {
		color = ColorLampOff
	}
	return lipgloss.NewStyle().Foreground(color)
}

// Rebind overlay styles
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrompt).
			Padding(1, 3)

	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrompt)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
