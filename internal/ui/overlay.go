package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dim style for background when overlay is shown
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// compositeOverlay renders overlay centered on top of a dimmed background
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimLines(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}

	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = dimStyle.Render(strings.Repeat(" ", startX)) + line + dimStyle.Render(strings.Repeat(" ", rightPad))
	}

	return strings.Join(bgLines, "\n")
}

// dimLines strips styling from background, dims it and pads it to fill the screen
func dimLines(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		dimmed := dimStyle.Render(stripAnsi(line))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// End of escape sequence at 'm' (SGR) or other terminator
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
