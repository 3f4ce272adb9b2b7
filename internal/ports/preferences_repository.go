package ports

import "context"

// PreferencesReader reads persisted preference values
type PreferencesReader interface {
	// Get returns the raw value for key and whether it exists
	Get(ctx context.Context, key string) (string, bool, error)
}

// PreferencesWriter writes persisted preference values
type PreferencesWriter interface {
	// SetMany writes every key/value pair in one transaction
	SetMany(ctx context.Context, values map[string]string) error
}

// PreferencesRepository is the composite interface
type PreferencesRepository interface {
	PreferencesReader
	PreferencesWriter
	Close() error
}
