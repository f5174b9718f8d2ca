package repositories

import "github.com/floatingpurr/sync-with-pdm/internal/domain/entities"

// LockfileRepository reads the pinned packages of a lockfile (pdm.lock).
type LockfileRepository interface {
	// Load returns the [[package]] tables of the lockfile at path, in file order.
	Load(path string) (*entities.Lockfile, error)
}

// ManifestRepository reads the dependency groups of a project manifest (pyproject.toml).
type ManifestRepository interface {
	Load(path string) (*entities.Manifest, error)
}
