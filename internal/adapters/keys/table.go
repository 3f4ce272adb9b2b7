package keys

import (
	"fmt"
	"sort"
	"sync"

	"github.com/renato0307/stoplight/internal/domain"
	"github.com/renato0307/stoplight/internal/ports"
)

// Table is the key registrar for a terminal host. Combos claimed by the
// host's own controls are reserved and cannot be registered.
type Table struct {
	mu         sync.RWMutex
	registered map[domain.Combo]struct{}
	reserved   map[domain.Combo]string
}

var _ ports.KeyRegistrar = (*Table)(nil)

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		registered: make(map[domain.Combo]struct{}),
		reserved:   make(map[domain.Combo]string),
	}
}

// Reserve marks combo as owned by a host control named owner
func (t *Table) Reserve(combo domain.Combo, owner string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reserved[combo] = owner
}

// Deliverable reports whether a terminal can send combo at all.
// Terminals have no Meta/Super key and cannot tell Ctrl+Shift from Ctrl.
func Deliverable(combo domain.Combo) error {
	if combo.Has(domain.ModMeta) {
		return fmt.Errorf("%w: terminals cannot deliver Meta combos (%s)", domain.ErrKeyUnavailable, combo)
	}
	if combo.Has(domain.ModCtrl) && combo.Has(domain.ModShift) {
		return fmt.Errorf("%w: terminals cannot deliver Ctrl+Shift combos (%s)", domain.ErrKeyUnavailable, combo)
	}
	return nil
}

// Register implements ports.KeyRegistrar
func (t *Table) Register(combo domain.Combo) error {
	if err := Deliverable(combo); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if owner, ok := t.reserved[combo]; ok {
		return fmt.Errorf("%w: %s is used by %s", domain.ErrKeyUnavailable, combo, owner)
	}
	if _, ok := t.registered[combo]; ok {
		return fmt.Errorf("%w: %s is already registered", domain.ErrKeyUnavailable, combo)
	}
	t.registered[combo] = struct{}{}
	return nil
}

// Unregister implements ports.KeyRegistrar
func (t *Table) Unregister(combo domain.Combo) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.registered, combo)
	return nil
}

// IsRegistered implements ports.KeyRegistrar
func (t *Table) IsRegistered(combo domain.Combo) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.registered[combo]
	return ok
}

// Registered returns the registered combos in canonical text order
func (t *Table) Registered() []domain.Combo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.Combo, 0, len(t.registered))
	for c := range t.registered {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
