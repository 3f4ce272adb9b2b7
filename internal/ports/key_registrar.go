package ports

import "github.com/renato0307/stoplight/internal/domain"

// KeyRegistrar claims and releases key combos in the host environment
type KeyRegistrar interface {
	IsRegistered(combo domain.Combo) bool
	Register(combo domain.Combo) error
	Unregister(combo domain.Combo) error
}
