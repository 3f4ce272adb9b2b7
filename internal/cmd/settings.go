package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/services"
)

// stdout is where command output goes, replaced in tests
var stdout io.Writer = os.Stdout

// SettingsCmd manages settings.json and the operator preferences
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Show SettingsShowCmd `cmd:"show" help:"Show stored timer and sound preferences"`
	Set  SettingsSetCmd  `cmd:"set" help:"Set a timer or sound preference"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return writeJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
			"preferences":   services.PreferenceKeys,
		})
	}

	fmt.Fprintf(stdout, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(stdout, "Example settings.json:")
	fmt.Fprintln(stdout)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Preferences (stoplight settings set <key> <value>):")
	w = tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, k := range services.PreferenceKeys {
		fmt.Fprintf(w, "%s\t%s\n", k.Name, k.Description)
	}
	w.Flush()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Create or edit this file to configure stoplight.")
	fmt.Fprintln(stdout, "All settings are optional and have sensible defaults.")

	return nil
}

// SettingsShowCmd prints the stored preferences
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	values, err := cli.Container.Preferences.Values(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	if s.Format == "json" {
		return writeJSON(values)
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%s\n", v.Key, v.Value)
	}
	return w.Flush()
}

// SettingsSetCmd updates one preference
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Preference key (e.g., hold_duration_ms, hold_mode, volume)"`
	Value string `arg:"" help:"New value (durations accept 45s or milliseconds)"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	if _, err := cli.Container.Preferences.SetValue(context.Background(), s.Key, s.Value); err != nil {
		return fmt.Errorf("failed to set %s: %w", s.Key, err)
	}
	fmt.Fprintf(stdout, "✓ %s updated\n", s.Key)
	return nil
}

func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}
