package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCombo         = errors.New("invalid key combo")
	ErrInvalidTransition    = errors.New("invalid timer transition")
	ErrKeyUnavailable       = errors.New("key combo unavailable")
	ErrNoRebindSession      = errors.New("no rebind in progress")
	ErrRegistrationConflict = errors.New("key combo already in use")
	ErrRegistrationFailure  = errors.New("key combo registration failed")
	ErrSessionBusy          = errors.New("another rebind is in progress")
	ErrUnknownAction        = errors.New("unknown action")
)

// RebindError ties a hotkey failure to the action and combo involved
type RebindError struct {
	Action Action
	Combo  Combo
	Err    error
}

func (e *RebindError) Error() string {
	if e.Combo.IsZero() {
		return fmt.Sprintf("action '%s': %v", e.Action, e.Err)
	}
	return fmt.Sprintf("action '%s' (%s): %v", e.Action, e.Combo, e.Err)
}

func (e *RebindError) Unwrap() error {
	return e.Err
}
