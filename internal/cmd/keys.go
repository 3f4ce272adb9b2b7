package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/renato0307/stoplight/internal/adapters/keys"
	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/services"
	"github.com/renato0307/stoplight/internal/ui"
)

// KeysCmd manages signal hotkeys
type KeysCmd struct {
	List KeysListCmd `cmd:"list" help:"List signal hotkeys" default:"1"`
	Set  KeysSetCmd  `cmd:"set" help:"Bind a signal action to a key combo"`
}

// KeysListCmd lists the bound hotkeys
type KeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (k *KeysListCmd) Run(cli *CLI) error {
	prefs, err := cli.Container.Preferences.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load hotkeys: %w", err)
	}

	if k.Format == "json" {
		return writeJSON(prefs.Hotkeys.ToStrings())
	}

	defaults := domain.DefaultHotkeys()
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTION\tCOMBO\tDEFAULT\tDESCRIPTION")
	for _, action := range prefs.Hotkeys.Actions() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			action, prefs.Hotkeys[action], defaults[action], action.Help())
	}
	return w.Flush()
}

// KeysSetCmd rebinds one action
type KeysSetCmd struct {
	Action string `arg:"" help:"Action name (green, yellow, red, timer, timer_red)"`
	Combo  string `arg:"" help:"Key combo (e.g., alt+g, ctrl+shift+1, f5)"`
}

// Run executes the set command
func (k *KeysSetCmd) Run(cli *CLI) error {
	var controls config.KeyBindingsConfig
	if cli.settings != nil {
		controls = cli.settings.Keys
	}

	bindings, err := rebindOffline(context.Background(), cli.Container.Preferences, controls, k.Action, k.Combo)
	if err != nil {
		return err
	}
	action, _ := domain.ParseAction(k.Action)
	fmt.Fprintf(stdout, "✓ %s bound to %s\n", action, bindings[action])
	return nil
}

// rebindOffline applies one rebind against the same key table the TUI
// uses, so a combo the TUI would reject is rejected here too
func rebindOffline(ctx context.Context, prefsService *services.PreferencesService, controls config.KeyBindingsConfig, actionName, comboText string) (domain.HotkeyMap, error) {
	action, err := domain.ParseAction(actionName)
	if err != nil {
		return nil, err
	}
	combo, err := domain.ParseCombo(comboText)
	if err != nil {
		return nil, err
	}

	prefs, err := prefsService.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotkeys: %w", err)
	}

	keyMap := ui.NewKeyMap(controls)
	table := keys.NewTable()
	for c, owner := range keyMap.ReservedCombos() {
		table.Reserve(c, owner)
	}

	registry := services.NewHotkeyRegistry(table)
	if err := registry.RegisterAll(prefs.Hotkeys); err != nil {
		logging.Logger.Warn("Stored hotkeys rejected, starting from defaults", "error", err)
		if err := registry.RegisterAll(domain.DefaultHotkeys()); err != nil {
			return nil, err
		}
	}

	if current, ok := registry.Binding(action); ok && current == combo {
		return registry.Bindings(), nil
	}
	if err := registry.RegisterOne(action, combo); err != nil {
		return nil, err
	}

	bindings := registry.Bindings()
	if err := prefsService.SaveHotkeys(ctx, bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}
