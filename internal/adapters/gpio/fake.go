package gpio

// LampState is one recorded Set call.
type LampState struct {
	Green  bool
	Yellow bool
	Red    bool
}

// FakeLamps records lamp states for test assertions.
type FakeLamps struct {
	// Closed tracks if Close was called
	Closed bool

	// History contains every state passed to Set, in order
	History []LampState

	// SetError, if set, will be returned by Set()
	SetError error
}

// NewFakeLamps creates FakeLamps for testing.
func NewFakeLamps() *FakeLamps {
	return &FakeLamps{}
}

// Set records the lamp state.
func (f *FakeLamps) Set(green, yellow, red bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.History = append(f.History, LampState{Green: green, Yellow: yellow, Red: red})
	return nil
}

// Close marks the lamps as closed.
func (f *FakeLamps) Close() error {
	f.Closed = true
	return nil
}

// Current returns the last recorded state, all off if none.
func (f *FakeLamps) Current() LampState {
	if len(f.History) == 0 {
		return LampState{}
	}
	return f.History[len(f.History)-1]
}
