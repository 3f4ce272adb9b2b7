package cmd

import (
	adaptersound "github.com/renato0307/stoplight/internal/adapters/sound"
	adapterstorage "github.com/renato0307/stoplight/internal/adapters/storage"
	"github.com/renato0307/stoplight/internal/ports"
	"github.com/renato0307/stoplight/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Preferences *services.PreferencesService
	SoundPlayer ports.SoundPlayer

	// Internal - for cleanup only
	prefsRepo ports.PreferencesRepository
}

// NewContainer creates a new Container backed by the database at dbPath
func NewContainer(dbPath string) (*Container, error) {
	prefsRepo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	return &Container{
		Preferences: services.NewPreferencesService(prefsRepo),
		SoundPlayer: adaptersound.NewPlayer(),
		prefsRepo:   prefsRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.prefsRepo != nil {
		return c.prefsRepo.Close()
	}
	return nil
}
