package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// clearErrorMsg is a message sent after the error clear delay to trigger error clearing.
type clearErrorMsg struct{}

// ErrorManager handles error display and auto-clearing functionality.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the current error to be displayed.
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
}

// ClearError clears the current error.
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the configured delay.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// formatErrorForDisplay word-wraps err to maxWidth columns under an "Error: "
// prefix, keeping at most maxErrorLines lines and marking a cut with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, 10)
	limit := max(width-utf8.RuneCountInString(errorPrefix), 10)

	var lines []string
	line := ""
	truncated := false
	for i, word := range words {
		if line != "" && utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, line)
			line, limit = "", width
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	if line != "" {
		lines = append(lines, line)
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		if keep := width - utf8.RuneCountInString(truncationMark); len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
