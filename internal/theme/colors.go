package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Lamp colors
const (
	ColorLampGreen  Color = "46"  // Bright green
	ColorLampOff    Color = "236" // Near black - unlit lamp
	ColorLampRed    Color = "196" // Bright red
	ColorLampYellow Color = "226" // Bright yellow
	ColorHousing    Color = "240" // Signal head border
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "42"  // Green - confirmations
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorPaused    Color = "214" // Orange - paused label
	ColorPrompt    Color = "226" // Yellow - rebind prompt
)
