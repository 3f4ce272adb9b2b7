package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/theme"
)

// HelpScreen displays control keys and the current signal hotkeys
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap, hotkeys domain.HotkeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Signal Hotkeys") + "\n"
	for _, action := range domain.AllActions {
		combo, ok := hotkeys[action]
		if !ok {
			continue
		}
		content += renderShortcut(combo.String(), action.Help())
	}

	content += "\n" + theme.HelpGroupStyle.Render("Timer") + "\n"
	content += renderBinding(keys.Pause.Binding)
	content += renderBinding(keys.Stop.Binding)
	content += renderBinding(keys.Clear.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Rebind.Binding)
	content += renderBinding(keys.Settings.Binding)
	content += renderBinding(keys.Help.Binding)
	content += renderBinding(keys.Quit.Binding)
	content += renderBinding(keys.ForceQuit.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Timer Phases (read-only)") + "\n"
	content += renderShortcut("GREEN / RED", "holding the chosen color")
	content += renderShortcut("WARNING", "yellow flashes until time is up")
	content += renderShortcut("PAUSED", "countdown frozen, press pause again to resume")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, hotkeys domain.HotkeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, hotkeys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Quit.Binding, h.keys.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
