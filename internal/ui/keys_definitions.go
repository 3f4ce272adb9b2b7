package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable control key.
// Control keys drive the TUI itself; signal actions use the hotkey registry.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Msg      tea.Msg // Message dispatched when the key is pressed
	Name     string
}

// AllKeyDefinitions contains all configurable control keys.
// This is the single source of truth for key names, defaults and help text.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit", Msg: QuitMsg{}},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", Msg: ShowHelpMsg{}},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", Msg: QuitMsg{}},
	{Name: "rebind", Defaults: []string{"b"}, Help: "rebind a hotkey", Msg: ShowRebindPickerMsg{}},
	{Name: "settings", Defaults: []string{"o"}, Help: "timer settings", Msg: ShowSettingsMsg{}},

	// Timer keys
	{Name: "clear", Defaults: []string{"c"}, Help: "stop timer and turn signal off", Msg: ClearSignalMsg{}},
	{Name: "pause", Defaults: []string{"p", "space"}, Help: "pause/resume timer", Msg: TogglePauseMsg{}},
	{Name: "stop", Defaults: []string{"x"}, Help: "stop timer", Msg: StopTimerMsg{}},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
