package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/domain"
)

func TestKeyEventFromMsg(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		combo string
	}{
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}, Alt: true}, "Alt+G"},
		{"shifted letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}, Alt: true}, "Alt+Shift+G"},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlR}, "Ctrl+R"},
		{"function key", tea.KeyMsg{Type: tea.KeyF9}, "F9"},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "Space"},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}, "1"},
		{"plus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}, Alt: true}, "Alt++"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo, ok := keyEventFromMsg(tt.msg).Combo()
			require.True(t, ok)
			assert.Equal(t, tt.combo, combo.String())
		})
	}
}

func TestKeyEventFromMsg_Escape(t *testing.T) {
	ev := keyEventFromMsg(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, ev.IsEscape())
}

func TestNewKeyMap_CustomKeys(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"quit": {"Q"}})

	msg, ok := keys.Match(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}})
	require.True(t, ok)
	assert.Equal(t, QuitMsg{}, msg)

	_, ok = keys.Match(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.False(t, ok)

	assert.Equal(t, "Q", keys.Quit.Binding.Help().Key)
}

func TestKeyMap_SpaceMatchesPause(t *testing.T) {
	keys := NewKeyMap(nil)

	msg, ok := keys.Match(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	require.True(t, ok)
	assert.Equal(t, TogglePauseMsg{}, msg)
	assert.Equal(t, "p/space", keys.Pause.Binding.Help().Key)
}

func TestKeyMap_ReservedCombos(t *testing.T) {
	reserved := NewKeyMap(nil).ReservedCombos()

	assert.Equal(t, "quit", reserved[domain.MustParseCombo("Q")])
	assert.Equal(t, "force_quit", reserved[domain.MustParseCombo("Ctrl+C")])
	assert.Equal(t, "pause", reserved[domain.MustParseCombo("Space")])
	assert.Equal(t, "help", reserved[domain.MustParseCombo("?")])

	for _, c := range domain.DefaultHotkeys() {
		_, clash := reserved[c]
		assert.False(t, clash, "default hotkey %s collides with a control key", c)
	}
}

func TestGetValidKeyNames(t *testing.T) {
	names := GetValidKeyNames()

	assert.Len(t, names, len(AllKeyDefinitions))
	assert.IsIncreasing(t, names)
	assert.True(t, IsValidKeyName("rebind"))
	assert.False(t, IsValidKeyName("archive"))
	require.NoError(t, config.KeyBindingsConfig{"stop": {"s"}}.Validate(names))
}
