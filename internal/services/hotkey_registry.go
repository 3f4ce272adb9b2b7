package services

import (
	"errors"
	"fmt"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

// HotkeyRegistry owns the action → combo mapping and keeps the
// environment's registrations in sync with it
type HotkeyRegistry struct {
	bindings  domain.HotkeyMap
	lastGood  domain.HotkeyMap
	registrar ports.KeyRegistrar
}

// NewHotkeyRegistry creates an empty registry. Call RegisterAll to bind keys.
func NewHotkeyRegistry(registrar ports.KeyRegistrar) *HotkeyRegistry {
	return &HotkeyRegistry{
		bindings:  domain.HotkeyMap{},
		lastGood:  domain.HotkeyMap{},
		registrar: registrar,
	}
}

// Bindings returns a copy of the current mapping
func (r *HotkeyRegistry) Bindings() domain.HotkeyMap {
	return r.bindings.Clone()
}

// Binding returns the combo bound to action
func (r *HotkeyRegistry) Binding(action domain.Action) (domain.Combo, bool) {
	c, ok := r.bindings[action]
	return c, ok
}

// Lookup returns the action a registered combo triggers
func (r *HotkeyRegistry) Lookup(combo domain.Combo) (domain.Action, bool) {
	action, ok := r.bindings.Owner(combo)
	if !ok || !r.registrar.IsRegistered(combo) {
		return "", false
	}
	return action, true
}

// IsTaken reports whether combo is currently registered for any action
func (r *HotkeyRegistry) IsTaken(combo domain.Combo) bool {
	_, owned := r.bindings.Owner(combo)
	return owned && r.registrar.IsRegistered(combo)
}

// RegisterAll replaces every registration with m.
// On failure the last-known-good mapping is restored before returning.
func (r *HotkeyRegistry) RegisterAll(m domain.HotkeyMap) error {
	if err := m.Validate(); err != nil {
		logging.Logger.Warn("Rejected hotkey map", "error", err)
		return err
	}

	r.unregisterAll()

	registered := domain.HotkeyMap{}
	for _, action := range m.Actions() {
		combo := m[action]
		if err := r.registrar.Register(combo); err != nil {
			logging.Logger.Error("Failed to register hotkey",
				"action", action,
				"combo", combo.String(),
				"error", err)
			r.rollback(registered)
			return &domain.RebindError{
				Action: action,
				Combo:  combo,
				Err:    fmt.Errorf("%w: %w", domain.ErrRegistrationFailure, err),
			}
		}
		registered[action] = combo
	}

	r.bindings = registered
	r.lastGood = registered.Clone()
	logging.Logger.Debug("Hotkeys registered", "bindings", registered.ToStrings())
	return nil
}

// RegisterOne binds a single action, replacing its previous combo.
// The combo must not be registered for another action.
func (r *HotkeyRegistry) RegisterOne(action domain.Action, combo domain.Combo) error {
	if owner, ok := r.bindings.Owner(combo); ok && owner != action && r.registrar.IsRegistered(combo) {
		return &domain.RebindError{
			Action: action,
			Combo:  combo,
			Err:    fmt.Errorf("%w: already bound to '%s'", domain.ErrRegistrationConflict, owner),
		}
	}

	if prior, ok := r.bindings[action]; ok && prior != combo {
		if err := r.Unregister(prior); err != nil {
			return err
		}
	}

	if err := r.registrar.Register(combo); err != nil {
		logging.Logger.Error("Failed to register hotkey",
			"action", action,
			"combo", combo.String(),
			"error", err)
		// The prior combo is already released; put the whole map back
		r.unregisterAll()
		r.rollback(domain.HotkeyMap{})
		return &domain.RebindError{
			Action: action,
			Combo:  combo,
			Err:    fmt.Errorf("%w: %w", domain.ErrRegistrationFailure, err),
		}
	}
	r.bindings[action] = combo
	r.lastGood = r.bindings.Clone()
	return nil
}

// Unregister releases combo in the environment. The mapping is left intact
// so a later RegisterAll can restore it. Unknown combos are ignored.
func (r *HotkeyRegistry) Unregister(combo domain.Combo) error {
	if !r.registrar.IsRegistered(combo) {
		return nil
	}
	if err := r.registrar.Unregister(combo); err != nil {
		return fmt.Errorf("failed to unregister %s: %w", combo, err)
	}
	return nil
}

func (r *HotkeyRegistry) unregisterAll() {
	for _, action := range r.bindings.Actions() {
		if err := r.Unregister(r.bindings[action]); err != nil {
			logging.Logger.Warn("Failed to unregister hotkey", "action", action, "error", err)
		}
	}
}

// rollback drops the partially registered set and re-registers the last-known-good map
func (r *HotkeyRegistry) rollback(partial domain.HotkeyMap) {
	for _, action := range partial.Actions() {
		if err := r.Unregister(partial[action]); err != nil {
			logging.Logger.Warn("Failed to drop partial registration", "action", action, "error", err)
		}
	}

	restored := domain.HotkeyMap{}
	var errs []error
	for _, action := range r.lastGood.Actions() {
		combo := r.lastGood[action]
		if err := r.registrar.Register(combo); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", action, err))
			continue
		}
		restored[action] = combo
	}
	if len(errs) > 0 {
		logging.Logger.Error("Could not fully restore hotkeys", "error", errors.Join(errs...))
	}

	r.bindings = restored
	logging.Logger.Info("Restored last known good hotkeys", "bindings", restored.ToStrings())
}
