package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stoplight/internal/domain"
	portsmocks "github.com/renato0307/stoplight/internal/ports/mocks"
	"github.com/renato0307/stoplight/internal/services"
)

func newTestModel(t *testing.T, stored map[string]string) (*Model, *portsmocks.MockPreferencesRepository) {
	t.Helper()
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, key string) (string, bool, error) {
			v, ok := stored[key]
			return v, ok, nil
		}).Maybe()

	m, err := NewModel(ModelConfig{
		ErrorClearDelay: time.Second,
		Preferences:     services.NewPreferencesService(repo),
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, repo
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_HotkeySetsLight(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(altKey('r'))

	assert.Equal(t, domain.LightRed, m.signal.light)
	assert.Equal(t, domain.PhaseIdle, m.engine.State().Phase)
}

func TestModel_TimerHotkeyAndControls(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(altKey('s'))
	assert.Equal(t, domain.PhaseHolding, m.engine.State().Phase)
	assert.Equal(t, domain.LightGreen, m.signal.light)

	m.Update(runeKey('p'))
	assert.True(t, m.engine.State().Paused)
	assert.Equal(t, "PAUSED", m.signal.PhaseLabel())

	m.Update(runeKey('x'))
	assert.Equal(t, domain.PhaseIdle, m.engine.State().Phase)

	m.Update(runeKey('c'))
	assert.Equal(t, domain.LightOff, m.signal.light)
}

func TestModel_StoredHotkeysAreRegistered(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{services.PrefHotkeys: `{"red":"F4"}`})

	m.Update(tea.KeyMsg{Type: tea.KeyF4})
	assert.Equal(t, domain.LightRed, m.signal.light)

	// Alt+R is no longer bound
	m.Update(altKey('g'))
	m.Update(altKey('r'))
	assert.Equal(t, domain.LightGreen, m.signal.light)
}

func TestModel_StoredHotkeyOnControlKeyFallsBack(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{services.PrefHotkeys: `{"green":"Q"}`})

	assert.True(t, m.errorManager.HasError())
	assert.True(t, domain.DefaultHotkeys().Equal(m.registry.Bindings()))
}

func TestModel_RebindCommitsAndPersists(t *testing.T) {
	m, repo := newTestModel(t, nil)
	repo.EXPECT().SetMany(mock.Anything, mock.MatchedBy(func(values map[string]string) bool {
		_, ok := values[services.PrefHotkeys]
		return ok
	})).Return(nil).Once()

	m.Update(BeginRebindMsg{Action: domain.ActionGreen})
	require.True(t, m.signal.Capturing())
	assert.Contains(t, m.View(), "Press a new key")

	// Bound keys are captured, not triggered
	m.Update(tea.KeyMsg{Type: tea.KeyF5})

	assert.False(t, m.signal.Capturing())
	combo, _ := m.registry.Binding(domain.ActionGreen)
	assert.Equal(t, "F5", combo.String())
	assert.Equal(t, domain.LightOff, m.signal.light)

	m.Update(tea.KeyMsg{Type: tea.KeyF5})
	assert.Equal(t, domain.LightGreen, m.signal.light)
}

func TestModel_RebindOntoControlKeyFails(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(BeginRebindMsg{Action: domain.ActionYellow})
	m.Update(runeKey('q'))

	assert.False(t, m.signal.Capturing())
	assert.Contains(t, m.signal.Status(), "not available")
	assert.True(t, domain.DefaultHotkeys().Equal(m.registry.Bindings()))
}

func TestModel_HelpDialog(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(runeKey('?'))
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "Alt+G")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateSignal, m.state)
}

func TestModel_QuitClosesScheduler(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(altKey('s'))

	_, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.engine.IsActive())
	select {
	case <-m.scheduler.Closed():
	default:
		t.Fatal("scheduler not closed")
	}
}

func TestModel_FiredCallbacksRunOnLoop(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(altKey('s'))
	before := m.engine.State().Remaining

	msg := waitForFired(m.scheduler)()
	fired, ok := msg.(firedMsg)
	require.True(t, ok)

	_, next := m.Update(fired)

	assert.NotNil(t, next)
	assert.Less(t, m.engine.State().Remaining, before)
}
