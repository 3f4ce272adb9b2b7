package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stoplight/internal/domain"
	portsmocks "github.com/renato0307/stoplight/internal/ports/mocks"
)

// stubStored makes Get return values from stored and report every other key missing
func stubStored(repo *portsmocks.MockPreferencesRepository, stored map[string]string) {
	repo.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, key string) (string, bool, error) {
			v, ok := stored[key]
			return v, ok, nil
		})
}

func TestPreferencesService_LoadDefaults(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	stubStored(repo, nil)

	prefs, err := NewPreferencesService(repo).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences().HoldDuration, prefs.HoldDuration)
	assert.Equal(t, domain.DefaultPreferences().WarnDuration, prefs.WarnDuration)
	assert.Equal(t, domain.HoldGreen, prefs.Mode)
	assert.InDelta(t, 0.5, prefs.Volume, 1e-9)
	assert.True(t, domain.DefaultHotkeys().Equal(prefs.Hotkeys))
}

func TestPreferencesService_LoadStoredValues(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	stubStored(repo, map[string]string{
		PrefHoldDuration: "45000",
		PrefWarnDuration: "5000",
		PrefHoldMode:     "red",
		PrefVolume:       "0.25",
		PrefHotkeys:      `{"green":"ctrl+1","timer_red":"F2","purple":"Alt+P"}`,
	})

	prefs, err := NewPreferencesService(repo).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, prefs.HoldDuration)
	assert.Equal(t, 5*time.Second, prefs.WarnDuration)
	assert.Equal(t, domain.HoldRed, prefs.Mode)
	assert.InDelta(t, 0.25, prefs.Volume, 1e-9)
	assert.Equal(t, "Ctrl+1", prefs.Hotkeys[domain.ActionGreen].String())
	assert.Equal(t, "F2", prefs.Hotkeys[domain.ActionTimerRed].String())
	assert.Equal(t, "Alt+Y", prefs.Hotkeys[domain.ActionYellow].String())
	assert.Len(t, prefs.Hotkeys, len(domain.AllActions))
}

func TestPreferencesService_LoadMalformedFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
	}{
		{"non-numeric hold", map[string]string{PrefHoldDuration: "soon"}},
		{"negative warn", map[string]string{PrefWarnDuration: "-5"}},
		{"unknown mode", map[string]string{PrefHoldMode: "blue"}},
		{"volume out of range", map[string]string{PrefVolume: "3"}},
		{"broken json", map[string]string{PrefHotkeys: "{"}},
		{"invalid combo", map[string]string{PrefHotkeys: `{"green":"Alt+"}`}},
		{"duplicate combos", map[string]string{PrefHotkeys: `{"green":"Alt+R"}`}},
		{"hold beyond max duration", map[string]string{PrefHoldDuration: "9300000000000"}},
		{"action given twice", map[string]string{PrefHotkeys: `{"timer_red":"F1","timerred":"F2"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockPreferencesRepository(t)
			stubStored(repo, tt.stored)

			prefs, err := NewPreferencesService(repo).Load(context.Background())

			require.NoError(t, err)
			def := domain.DefaultPreferences()
			assert.Equal(t, def.HoldDuration, prefs.HoldDuration)
			assert.Equal(t, def.WarnDuration, prefs.WarnDuration)
			assert.Equal(t, def.Mode, prefs.Mode)
			assert.Equal(t, def.Volume, prefs.Volume)
			assert.True(t, def.Hotkeys.Equal(prefs.Hotkeys))
		})
	}
}

func TestPreferencesService_LoadRepositoryError(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().Get(mock.Anything, mock.Anything).Return("", false, errors.New("locked"))

	_, err := NewPreferencesService(repo).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestPreferencesService_Save(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	prefs := domain.DefaultPreferences()
	prefs.HoldDuration = 90 * time.Second
	prefs.Volume = 0.75

	repo.EXPECT().SetMany(mock.Anything, mock.MatchedBy(func(values map[string]string) bool {
		return values[PrefHoldDuration] == "90000" &&
			values[PrefWarnDuration] == "20000" &&
			values[PrefHoldMode] == "green" &&
			values[PrefVolume] == "0.75" &&
			len(values) == 5
	})).Return(nil)

	require.NoError(t, NewPreferencesService(repo).Save(context.Background(), prefs))
}

func TestPreferencesService_SaveRejectsInvalid(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	prefs := domain.DefaultPreferences()
	prefs.WarnDuration = 0

	err := NewPreferencesService(repo).Save(context.Background(), prefs)

	assert.Error(t, err)
}

func TestPreferencesService_SaveHotkeys(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	m := domain.DefaultHotkeys()
	m[domain.ActionGreen] = combo("F1")

	repo.EXPECT().SetMany(mock.Anything, mock.MatchedBy(func(values map[string]string) bool {
		_, hasOnlyHotkeys := values[PrefHotkeys]
		return hasOnlyHotkeys && len(values) == 1
	})).Return(nil)

	require.NoError(t, NewPreferencesService(repo).SaveHotkeys(context.Background(), m))
}

func TestPreferencesService_SaveHotkeysError(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().SetMany(mock.Anything, mock.Anything).Return(errors.New("readonly"))

	err := NewPreferencesService(repo).SaveHotkeys(context.Background(), domain.DefaultHotkeys())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly")
}

func TestPreferencesService_SetValue(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	stubStored(repo, nil)
	repo.EXPECT().SetMany(mock.Anything, mock.Anything).Return(nil)

	prefs, err := NewPreferencesService(repo).SetValue(context.Background(), PrefWarnDuration, "1m")

	require.NoError(t, err)
	assert.Equal(t, time.Minute, prefs.WarnDuration)
}

func TestPreferencesService_SetValueInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{PrefHoldDuration, "0"},
		{PrefHoldMode, "yellow"},
		{PrefVolume, "loud"},
		{"colour", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			repo := portsmocks.NewMockPreferencesRepository(t)
			stubStored(repo, nil)

			_, err := NewPreferencesService(repo).SetValue(context.Background(), tt.key, tt.value)

			assert.Error(t, err)
		})
	}
}

func TestParseDurationMillis(t *testing.T) {
	d, err := ParseDurationMillis("1500")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	d, err = ParseDurationMillis("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = ParseDurationMillis("-1")
	assert.Error(t, err)
	_, err = ParseDurationMillis("later")
	assert.Error(t, err)
	_, err = ParseDurationMillis("9300000000000")
	assert.Error(t, err)
}
