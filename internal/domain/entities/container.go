package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Entities are plain values for now, so nothing is provided.
func RegisterProviders(_ *dig.Container) error {
	return nil
}
