package repositories

import "github.com/floatingpurr/sync-with-pdm/internal/domain/entities"

// MappingRepository provides the built-in package-to-repository table.
type MappingRepository interface {
	Load() (entities.DependencyMapping, error)
}

// ProjectRootRepository locates the root directory of the project enclosing dir.
type ProjectRootRepository interface {
	Find(dir string) (string, error)
}
