package pdm

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
)

// ErrNoPackages is returned for a lockfile without [[package]] tables.
var ErrNoPackages = errors.New("lockfile has no [[package]] tables")

type lockfileDocument struct {
	Package []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// LockfileRepository reads pdm.lock files.
type LockfileRepository struct{}

// NewLockfileRepository creates a new LockfileRepository.
func NewLockfileRepository() *LockfileRepository {
	return &LockfileRepository{}
}

// Load reads and parses the lockfile at path.
func (it *LockfileRepository) Load(path string) (*entities.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a lockfile given on the command line
	if err != nil {
		return nil, fmt.Errorf("reading lockfile: %w", err)
	}
	return ParseLockfile(data)
}

// ParseLockfile parses pdm.lock content, keeping the package order of the file.
func ParseLockfile(data []byte) (*entities.Lockfile, error) {
	var doc lockfileDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing lockfile TOML: %w", err)
	}
	if doc.Package == nil {
		return nil, ErrNoPackages
	}

	lockfile := &entities.Lockfile{Packages: make([]entities.LockPackage, 0, len(doc.Package))}
	for i, pkg := range doc.Package {
		if pkg.Name == "" || pkg.Version == "" {
			return nil, fmt.Errorf("package[%d]: name and version are required", i)
		}
		lockfile.Packages = append(lockfile.Packages, entities.LockPackage{
			Name:    pkg.Name,
			Version: pkg.Version,
		})
	}
	return lockfile, nil
}
