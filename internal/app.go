package internal

import (
	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	"github.com/floatingpurr/sync-with-pdm/internal/infrastructure/controllers"
)

// AppInternal holds the controllers the CLI is assembled from.
type AppInternal struct {
	syncController *controllers.SyncController
}

// NewAppInternal creates the application context.
func NewAppInternal(syncController *controllers.SyncController) *AppInternal {
	return &AppInternal{syncController: syncController}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() entities.Controller {
	return it.syncController
}
