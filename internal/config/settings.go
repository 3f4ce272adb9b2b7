package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds TUI control key overrides as a map.
// Keys are binding names (e.g., "quit", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	// Build set of valid names for quick lookup
	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// DefaultTopic is the MQTT topic prefix used when none is configured
const DefaultTopic = "stoplight"

// MQTTSettings configures the optional MQTT display sink
type MQTTSettings struct {
	Broker   string `json:"broker,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Topic    string `json:"topic,omitempty"`
}

// Enabled reports whether a broker is configured
func (m *MQTTSettings) Enabled() bool {
	return m != nil && m.Broker != ""
}

// GPIOSettings configures the optional GPIO lamp sink.
// Pins are BCM line offsets on Chip.
type GPIOSettings struct {
	Chip   string `json:"chip,omitempty"`
	Green  *int   `json:"green,omitempty"`
	Red    *int   `json:"red,omitempty"`
	Yellow *int   `json:"yellow,omitempty"`
}

// SSHSettings configures the serve command
type SSHSettings struct {
	Host string `json:"host,omitempty"`
	Port *int   `json:"port,omitempty"`
}

// Settings represents the structure of ~/.stoplight/settings.json
type Settings struct {
	Debug           *bool             `json:"debug,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	FlashIntervalMs *int              `json:"flash_interval_ms,omitempty"`
	GPIO            *GPIOSettings     `json:"gpio,omitempty"`
	Keys            KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
	MQTT            *MQTTSettings     `json:"mqtt,omitempty"`
	SoundEnabled    *bool             `json:"sound_enabled,omitempty"`
	SSH             *SSHSettings      `json:"ssh,omitempty"`
}

// DefaultErrorClearDelay is how long TUI errors stay on screen, in seconds
const DefaultErrorClearDelay = 10

// GetErrorClearDelay returns the configured delay or the default
func (s *Settings) GetErrorClearDelay() time.Duration {
	if s != nil && s.ErrorClearDelay != nil && *s.ErrorClearDelay > 0 {
		return time.Duration(*s.ErrorClearDelay) * time.Second
	}
	return DefaultErrorClearDelay * time.Second
}

// GetFlashInterval returns the warning flash interval, 0 meaning the default
func (s *Settings) GetFlashInterval() time.Duration {
	if s != nil && s.FlashIntervalMs != nil && *s.FlashIntervalMs > 0 {
		return time.Duration(*s.FlashIntervalMs) * time.Millisecond
	}
	return 0
}

// IsSoundEnabled defaults to true
func (s *Settings) IsSoundEnabled() bool {
	if s == nil || s.SoundEnabled == nil {
		return true
	}
	return *s.SoundEnabled
}

// LoadSettings loads settings from $STOPLIGHT_HOME/settings.json (or ~/.stoplight/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $STOPLIGHT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
