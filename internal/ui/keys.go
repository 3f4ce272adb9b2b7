package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/domain"
)

// ControlKey is a control key binding and the message it dispatches
type ControlKey struct {
	Binding key.Binding
	Msg     tea.Msg
	Name    string
}

// KeyMap contains the TUI control keys
type KeyMap struct {
	Clear     ControlKey
	ForceQuit ControlKey
	Help      ControlKey
	Pause     ControlKey
	Quit      ControlKey
	Rebind    ControlKey
	Settings  ControlKey
	Stop      ControlKey
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
// Pass nil for customKeys to use default bindings
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Clear:     buildBinding("clear", defaults, customKeys),
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Pause:     buildBinding("pause", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
		Rebind:    buildBinding("rebind", defaults, customKeys),
		Settings:  buildBinding("settings", defaults, customKeys),
		Stop:      buildBinding("stop", defaults, customKeys),
	}
}

// buildBinding creates a ControlKey from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) ControlKey {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	// The space bar may be reported as "space" or " "
	matchKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		matchKeys = append(matchKeys, k)
		if k == "space" {
			matchKeys = append(matchKeys, " ")
		}
	}

	return ControlKey{
		Binding: key.NewBinding(
			key.WithKeys(matchKeys...),
			key.WithHelp(strings.Join(keys, "/"), def.Help),
		),
		Msg:  def.Msg,
		Name: name,
	}
}

// All returns every control key
func (k KeyMap) All() []ControlKey {
	return []ControlKey{k.Help, k.Settings, k.Rebind, k.Pause, k.Stop, k.Clear, k.Quit, k.ForceQuit}
}

// Match returns the control key message for msg, if any
func (k KeyMap) Match(msg tea.KeyMsg) (tea.Msg, bool) {
	for _, c := range k.All() {
		if key.Matches(msg, c.Binding) {
			return c.Msg, true
		}
	}
	return nil, false
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Pause.Binding,
		k.Stop.Binding,
		k.Clear.Binding,
		k.Rebind.Binding,
		k.Settings.Binding,
		k.Help.Binding,
		k.Quit.Binding,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ReservedCombos returns the combos used by control keys, keyed by combo,
// valued by control name. Keys without a combo spelling are skipped.
func (k KeyMap) ReservedCombos() map[domain.Combo]string {
	reserved := make(map[domain.Combo]string)
	for _, c := range k.All() {
		for _, s := range c.Binding.Keys() {
			ev := keyEventFromString(s)
			combo, ok := ev.Combo()
			if !ok {
				continue
			}
			reserved[combo] = c.Name
		}
	}
	return reserved
}

// keyEventFromMsg converts a bubbletea key press into a domain key event
func keyEventFromMsg(msg tea.KeyMsg) domain.KeyEvent {
	return keyEventFromString(msg.String())
}

// keyEventFromString parses bubbletea's key spelling, e.g. "alt+ctrl+g" or "G"
func keyEventFromString(s string) domain.KeyEvent {
	var ev domain.KeyEvent
	for {
		switch {
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			ev.Alt = true
			s = s[len("alt+"):]
			continue
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			ev.Ctrl = true
			s = s[len("ctrl+"):]
			continue
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			ev.Shift = true
			s = s[len("shift+"):]
			continue
		}
		break
	}

	if s == " " {
		s = domain.KeySpace
	}
	// Terminals report Shift+letter as the upper-case rune
	if r := []rune(s); len(r) == 1 && r[0] >= 'A' && r[0] <= 'Z' {
		ev.Shift = true
	}
	ev.Key = s
	return ev
}
