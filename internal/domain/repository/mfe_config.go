package repository

import "bundle-cli/internal/domain/model"

// MfeConfigRepository stores the runtime overlay of each micro frontend in its
// public folder. It never adds or drops claim entries on its own.
type MfeConfigRepository interface {
	Exists(mfe model.MicroFrontend) bool
	Get(mfe model.MicroFrontend) (*model.MfeConfig, error)
	// Write creates the public folder when missing and overwrites the overlay.
	Write(mfe model.MicroFrontend, config *model.MfeConfig) error
}
