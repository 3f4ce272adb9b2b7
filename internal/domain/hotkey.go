package domain

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Action is one of the fixed operations that can be bound to a key combo
type Action string

const (
	ActionGreen    Action = "green"
	ActionYellow   Action = "yellow"
	ActionRed      Action = "red"
	ActionTimer    Action = "timer"
	ActionTimerRed Action = "timer_red"
)

// AllActions lists every bindable action in display and registration order
var AllActions = []Action{ActionGreen, ActionYellow, ActionRed, ActionTimer, ActionTimerRed}

// actionHelp describes each action for help screens and CLI listings
var actionHelp = map[Action]string{
	ActionGreen:    "set the light to green (pauses a running timer)",
	ActionYellow:   "set the light to yellow (pauses a running timer)",
	ActionRed:      "set the light to red (pauses a running timer)",
	ActionTimer:    "start a green-hold timer, or pause/resume the running one",
	ActionTimerRed: "start a red-hold timer, or pause/resume the running one",
}

// ParseAction converts an action name into an Action
func ParseAction(s string) (Action, error) {
	name := Action(strings.ToLower(strings.TrimSpace(s)))
	if name == "timerred" || name == "timer-red" {
		name = ActionTimerRed
	}
	if _, ok := actionHelp[name]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownAction, s, strings.Join(ActionNames(), ", "))
}

// ActionNames returns every action name in registration order
func ActionNames() []string {
	names := make([]string, len(AllActions))
	for i, a := range AllActions {
		names[i] = string(a)
	}
	return names
}

// Help returns a short description of the action
func (a Action) Help() string {
	return actionHelp[a]
}

// Modifier is a bitset of modifier keys
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModMeta
)

// modifierOrder is the canonical order modifiers are written in
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// modifierAliases maps lower-cased tokens to modifiers
var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"super":   ModMeta,
}

// Named terminal keys
const (
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
	KeySpace  = "Space"
	KeyTab    = "Tab"
)

// Combo is an ordered set of modifiers plus one terminal key.
// Combos are comparable and can be used as map keys.
type Combo struct {
	Key  string
	Mods Modifier
}

// String renders the combo in canonical form, e.g. "Ctrl+Alt+G"
func (c Combo) String() string {
	if c.IsZero() {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, m := range modifierOrder {
		if c.Mods&m.mod != 0 {
			parts = append(parts, m.name)
		}
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// IsZero reports whether the combo is unset
func (c Combo) IsZero() bool {
	return c.Key == "" && c.Mods == 0
}

// Has reports whether the combo carries the modifier
func (c Combo) Has(m Modifier) bool {
	return c.Mods&m != 0
}

// MarshalText implements encoding.TextMarshaler
func (c Combo) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Combo) UnmarshalText(data []byte) error {
	parsed, err := ParseCombo(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCombo parses a combo such as "alt+g", "Cmd+Shift+F5" or "Ctrl+Space".
// Modifiers may appear in any order and case; the result is canonical.
func ParseCombo(s string) (Combo, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Combo{}, fmt.Errorf("%w: empty combo", ErrInvalidCombo)
	}

	var mods Modifier
	rest := s
	for {
		idx := strings.Index(rest, "+")
		// A trailing "+" is the plus key itself, not a separator
		if idx <= 0 || idx == len(rest)-1 {
			break
		}
		token := strings.ToLower(strings.TrimSpace(rest[:idx]))
		mod, ok := modifierAliases[token]
		if !ok {
			return Combo{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidCombo, rest[:idx], s)
		}
		mods |= mod
		rest = rest[idx+1:]
	}

	key, ok := NormalizeTerminalKey(rest)
	if !ok {
		return Combo{}, fmt.Errorf("%w: %q is not a valid terminal key in %q", ErrInvalidCombo, rest, s)
	}
	return Combo{Key: key, Mods: mods}, nil
}

// MustParseCombo is ParseCombo for constants; it panics on invalid input
func MustParseCombo(s string) Combo {
	c, err := ParseCombo(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NormalizeTerminalKey returns the canonical spelling of a terminal key:
// a single printable character (letters upper-cased), Space, F1-F12, Enter or Tab.
func NormalizeTerminalKey(key string) (string, bool) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		if key == " " {
			return KeySpace, true
		}
		return "", false
	}

	lower := strings.ToLower(trimmed)
	switch lower {
	case "space":
		return KeySpace, true
	case "enter", "return":
		return KeyEnter, true
	case "tab":
		return KeyTab, true
	}
	if _, isMod := modifierAliases[lower]; isMod {
		return "", false
	}
	if len(lower) >= 2 && lower[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(lower[1:], "%d", &n); err == nil && n >= 1 && n <= 12 && fmt.Sprintf("f%d", n) == lower {
			return fmt.Sprintf("F%d", n), true
		}
	}

	if utf8.RuneCountInString(trimmed) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return "", false
	}
	return string(unicode.ToUpper(r)), true
}

// KeyEvent is a raw key-down with its modifier flags
type KeyEvent struct {
	Alt   bool
	Ctrl  bool
	Key   string
	Meta  bool
	Shift bool
}

// IsEscape reports whether the event is a bare or modified Escape
func (e KeyEvent) IsEscape() bool {
	return strings.EqualFold(e.Key, KeyEscape) || strings.EqualFold(e.Key, "esc")
}

// Combo converts the event into a candidate combo.
// It returns false for modifier-only events and keys that cannot terminate a combo.
func (e KeyEvent) Combo() (Combo, bool) {
	key, ok := NormalizeTerminalKey(e.Key)
	if !ok {
		return Combo{}, false
	}
	var mods Modifier
	if e.Ctrl {
		mods |= ModCtrl
	}
	if e.Alt {
		mods |= ModAlt
	}
	if e.Shift {
		mods |= ModShift
	}
	if e.Meta {
		mods |= ModMeta
	}
	return Combo{Key: key, Mods: mods}, true
}

// HotkeyMap maps each action to its combo
type HotkeyMap map[Action]Combo

// DefaultHotkeys returns the bindings used when nothing is persisted
func DefaultHotkeys() HotkeyMap {
	return HotkeyMap{
		ActionGreen:    MustParseCombo("Alt+G"),
		ActionYellow:   MustParseCombo("Alt+Y"),
		ActionRed:      MustParseCombo("Alt+R"),
		ActionTimer:    MustParseCombo("Alt+S"),
		ActionTimerRed: MustParseCombo("Alt+A"),
	}
}

// Clone returns an independent copy of the map
func (m HotkeyMap) Clone() HotkeyMap {
	out := make(HotkeyMap, len(m))
	for a, c := range m {
		out[a] = c
	}
	return out
}

// Equal reports whether both maps hold the same bindings
func (m HotkeyMap) Equal(other HotkeyMap) bool {
	if len(m) != len(other) {
		return false
	}
	for a, c := range m {
		if oc, ok := other[a]; !ok || oc != c {
			return false
		}
	}
	return true
}

// Validate checks for unknown actions, empty combos and duplicate combos
func (m HotkeyMap) Validate() error {
	owners := make(map[Combo]Action, len(m))
	for _, action := range m.Actions() {
		combo := m[action]
		if _, ok := actionHelp[action]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
		if combo.IsZero() {
			return &RebindError{Action: action, Err: fmt.Errorf("%w: empty combo", ErrInvalidCombo)}
		}
		if existing, found := owners[combo]; found {
			return &RebindError{
				Action: action,
				Combo:  combo,
				Err:    fmt.Errorf("%w: %s is assigned to both '%s' and '%s'", ErrRegistrationConflict, combo, existing, action),
			}
		}
		owners[combo] = action
	}
	return nil
}

// Actions returns the actions present in the map, known actions first in
// registration order, then any unknown ones sorted by name
func (m HotkeyMap) Actions() []Action {
	out := make([]Action, 0, len(m))
	seen := make(map[Action]bool, len(m))
	for _, a := range AllActions {
		if _, ok := m[a]; ok {
			out = append(out, a)
			seen[a] = true
		}
	}
	var extra []Action
	for a := range m {
		if !seen[a] {
			extra = append(extra, a)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Owner returns the action bound to combo
func (m HotkeyMap) Owner(combo Combo) (Action, bool) {
	for _, a := range m.Actions() {
		if m[a] == combo {
			return a, true
		}
	}
	return "", false
}

// ToStrings converts the map into action name -> canonical combo text
func (m HotkeyMap) ToStrings() map[string]string {
	out := make(map[string]string, len(m))
	for a, c := range m {
		out[string(a)] = c.String()
	}
	return out
}

// HotkeyMapFromStrings parses action name -> combo text, ignoring nothing:
// any unknown action or invalid combo is an error
func HotkeyMapFromStrings(raw map[string]string) (HotkeyMap, error) {
	out := make(HotkeyMap, len(raw))
	seen := make(map[Action]string, len(raw))
	for name, text := range raw {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		if other, dup := seen[action]; dup {
			return nil, fmt.Errorf("%w: '%s' is bound twice (%q and %q)", ErrRegistrationConflict, action, other, name)
		}
		seen[action] = name
		combo, err := ParseCombo(text)
		if err != nil {
			return nil, fmt.Errorf("binding for '%s': %w", action, err)
		}
		out[action] = combo
	}
	return out, nil
}
