package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// Preference keys in the key-value store
const (
	PrefHoldDuration = "hold_duration_ms"
	PrefHoldMode     = "hold_mode"
	PrefHotkeys      = "hotkeys"
	PrefVolume       = "volume"
	PrefWarnDuration = "warn_duration_ms"
)

// PreferenceKey documents one persisted preference
type PreferenceKey struct {
	Description string
	Name        string
}

// PreferenceKeys lists every persisted preference, sorted by name
var PreferenceKeys = []PreferenceKey{
	{Name: PrefHoldDuration, Description: "hold phase length in milliseconds"},
	{Name: PrefHoldMode, Description: "default hold color for the settings dialog (green, red)"},
	{Name: PrefHotkeys, Description: "JSON object of action to key combo"},
	{Name: PrefVolume, Description: "cue volume between 0 and 1"},
	{Name: PrefWarnDuration, Description: "flashing warning length in milliseconds"},
}

// PreferencesService loads and saves operator preferences
type PreferencesService struct {
	repo ports.PreferencesRepository
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(repo ports.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

// Load reads every preference. Missing keys take their default; malformed
// values are logged and replaced by the default.
func (s *PreferencesService) Load(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	raw, err := s.readAll(ctx)
	if err != nil {
		return prefs, err
	}

	for key, value := range raw {
		if err := applyPreference(&prefs, key, value); err != nil {
			logging.Logger.Warn("Ignoring malformed preference", "key", key, "value", value, "error", err)
			resetPreference(&prefs, key)
		}
	}

	if err := prefs.Hotkeys.Validate(); err != nil {
		logging.Logger.Warn("Persisted hotkeys are invalid, using defaults", "error", err)
		prefs.Hotkeys = domain.DefaultHotkeys()
	}

	logging.Logger.Debug("Preferences loaded",
		"hold", prefs.HoldDuration,
		"warn", prefs.WarnDuration,
		"mode", prefs.Mode,
		"volume", prefs.Volume)
	return prefs, nil
}

// Save validates and writes every preference in one transaction
func (s *PreferencesService) Save(ctx context.Context, prefs domain.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	values, err := encodePreferences(prefs)
	if err != nil {
		return err
	}
	if err := s.repo.SetMany(ctx, values); err != nil {
		logging.Logger.Error("Failed to save preferences", "error", err)
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	logging.Logger.Info("Preferences saved")
	return nil
}

// SaveHotkeys writes only the hotkey mapping
func (s *PreferencesService) SaveHotkeys(ctx context.Context, m domain.HotkeyMap) error {
	if err := m.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(m.ToStrings())
	if err != nil {
		return fmt.Errorf("failed to encode hotkeys: %w", err)
	}
	if err := s.repo.SetMany(ctx, map[string]string{PrefHotkeys: string(data)}); err != nil {
		logging.Logger.Error("Failed to save hotkeys", "error", err)
		return fmt.Errorf("failed to save hotkeys: %w", err)
	}
	logging.Logger.Info("Hotkeys saved", "bindings", m.ToStrings())
	return nil
}

// SetValue parses a single preference from text and saves the result.
// Durations accept Go syntax ("45s") or plain milliseconds.
func (s *PreferencesService) SetValue(ctx context.Context, key, value string) (domain.Preferences, error) {
	prefs, err := s.Load(ctx)
	if err != nil {
		return prefs, err
	}

	switch key {
	case PrefHoldDuration, PrefWarnDuration:
		d, err := ParseDurationMillis(value)
		if err != nil {
			return prefs, err
		}
		value = strconv.FormatInt(d.Milliseconds(), 10)
	}

	if err := applyPreference(&prefs, key, value); err != nil {
		return prefs, err
	}
	return prefs, s.Save(ctx, prefs)
}

// Values returns every preference in its stored text form, sorted by key
func (s *PreferencesService) Values(ctx context.Context) ([]PreferenceValue, error) {
	prefs, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	encoded, err := encodePreferences(prefs)
	if err != nil {
		return nil, err
	}
	out := make([]PreferenceValue, 0, len(encoded))
	for key, value := range encoded {
		out = append(out, PreferenceValue{Key: key, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// PreferenceValue is a key with its stored text
type PreferenceValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (s *PreferencesService) readAll(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(PreferenceKeys))
	for _, k := range PreferenceKeys {
		value, ok, err := s.repo.Get(ctx, k.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read preference %s: %w", k.Name, err)
		}
		if ok {
			out[k.Name] = value
		}
	}
	return out, nil
}

func applyPreference(prefs *domain.Preferences, key, value string) error {
	switch key {
	case PrefHoldDuration:
		d, err := parsePositiveMillis(value)
		if err != nil {
			return err
		}
		prefs.HoldDuration = d
	case PrefWarnDuration:
		d, err := parsePositiveMillis(value)
		if err != nil {
			return err
		}
		prefs.WarnDuration = d
	case PrefHoldMode:
		mode, err := domain.ParseHoldColor(value)
		if err != nil {
			return err
		}
		prefs.Mode = mode
	case PrefVolume:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid volume %q: %w", value, err)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("volume must be between 0 and 1, got %v", v)
		}
		prefs.Volume = v
	case PrefHotkeys:
		m, err := decodeHotkeys(value)
		if err != nil {
			return err
		}
		prefs.Hotkeys = m
	default:
		return fmt.Errorf("unknown preference %q", key)
	}
	return nil
}

func resetPreference(prefs *domain.Preferences, key string) {
	def := domain.DefaultPreferences()
	switch key {
	case PrefHoldDuration:
		prefs.HoldDuration = def.HoldDuration
	case PrefWarnDuration:
		prefs.WarnDuration = def.WarnDuration
	case PrefHoldMode:
		prefs.Mode = def.Mode
	case PrefVolume:
		prefs.Volume = def.Volume
	case PrefHotkeys:
		prefs.Hotkeys = def.Hotkeys
	}
}

// decodeHotkeys parses the stored JSON object. Actions missing from it keep
// their default combo; unknown action names are dropped.
func decodeHotkeys(value string) (domain.HotkeyMap, error) {
	var raw map[string]string
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, fmt.Errorf("invalid hotkeys JSON: %w", err)
	}

	m := domain.DefaultHotkeys()
	seen := make(map[domain.Action]string, len(raw))
	for name, text := range raw {
		action, err := domain.ParseAction(name)
		if err != nil {
			logging.Logger.Warn("Dropping hotkey for unknown action", "action", name)
			continue
		}
		if other, dup := seen[action]; dup {
			return nil, fmt.Errorf("hotkey for '%s' given twice (%q and %q)", action, other, name)
		}
		seen[action] = name
		combo, err := domain.ParseCombo(text)
		if err != nil {
			return nil, fmt.Errorf("hotkey for '%s': %w", action, err)
		}
		m[action] = combo
	}
	return m, nil
}

func encodePreferences(prefs domain.Preferences) (map[string]string, error) {
	hotkeys, err := json.Marshal(prefs.Hotkeys.ToStrings())
	if err != nil {
		return nil, fmt.Errorf("failed to encode hotkeys: %w", err)
	}
	return map[string]string{
		PrefHoldDuration: strconv.FormatInt(prefs.HoldDuration.Milliseconds(), 10),
		PrefHoldMode:     string(prefs.Mode),
		PrefHotkeys:      string(hotkeys),
		PrefVolume:       strconv.FormatFloat(prefs.Volume, 'f', -1, 64),
		PrefWarnDuration: strconv.FormatInt(prefs.WarnDuration.Milliseconds(), 10),
	}, nil
}

func parsePositiveMillis(value string) (time.Duration, error) {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid milliseconds %q: %w", value, err)
	}
	return millisToDuration(ms)
}

// maxMillis is the largest millisecond count a time.Duration can hold
const maxMillis = math.MaxInt64 / int64(time.Millisecond)

func millisToDuration(ms int64) (time.Duration, error) {
	if ms <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %dms", ms)
	}
	if ms > maxMillis {
		return 0, fmt.Errorf("duration too long, got %dms (max %dms)", ms, maxMillis)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// ParseDurationMillis accepts "1m30s" style durations or a bare millisecond count
func ParseDurationMillis(value string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return millisToDuration(ms)
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", value, err)
	}
	if d < time.Millisecond {
		return 0, fmt.Errorf("duration must be at least 1ms, got %s", d)
	}
	return d.Truncate(time.Millisecond), nil
}
