package services

import (
	"errors"

	"github.com/renato0307/stoplight/internal/domain"
)

// recorder captures emitted events
type recorder struct {
	events []domain.Event
}

func (r *recorder) Emit(e domain.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []domain.EventKind {
	out := make([]domain.EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) count(kind domain.EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) last(kind domain.EventKind) (domain.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return domain.Event{}, false
}

func (r *recorder) lights() []domain.Light {
	var out []domain.Light
	for _, e := range r.events {
		if e.Kind == domain.EventLightSet {
			out = append(out, e.Light)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.events = nil
}

var errRefused = errors.New("refused by environment")

// fakeRegistrar is an in-memory key table that can refuse chosen combos
type fakeRegistrar struct {
	refuse     map[domain.Combo]bool
	registered map[domain.Combo]bool
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{
		refuse:     map[domain.Combo]bool{},
		registered: map[domain.Combo]bool{},
	}
}

func (f *fakeRegistrar) IsRegistered(c domain.Combo) bool {
	return f.registered[c]
}

func (f *fakeRegistrar) Register(c domain.Combo) error {
	if f.refuse[c] {
		return errRefused
	}
	f.registered[c] = true
	return nil
}

func (f *fakeRegistrar) Unregister(c domain.Combo) error {
	delete(f.registered, c)
	return nil
}

func (f *fakeRegistrar) combos() []string {
	var out []string
	for c := range f.registered {
		out = append(out, c.String())
	}
	return out
}

func combo(s string) domain.Combo {
	return domain.MustParseCombo(s)
}

func comboStrings(m domain.HotkeyMap) []string {
	var out []string
	for _, c := range m {
		out = append(out, c.String())
	}
	return out
}
