//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	"github.com/floatingpurr/sync-with-pdm/internal/domain/repositories"
)

// StubLockfileRepository implements repositories.LockfileRepository.
type StubLockfileRepository struct {
	Lockfile    *entities.Lockfile
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.LockfileRepository = (*StubLockfileRepository)(nil)

func (s *StubLockfileRepository) Load(path string) (*entities.Lockfile, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	return s.Lockfile, s.LoadErr
}

// StubManifestRepository implements repositories.ManifestRepository.
type StubManifestRepository struct {
	Manifest    *entities.Manifest
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Load(path string) (*entities.Manifest, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	return s.Manifest, s.LoadErr
}

// StubMappingRepository implements repositories.MappingRepository.
type StubMappingRepository struct {
	Mapping entities.DependencyMapping
	LoadErr error
}

var _ repositories.MappingRepository = (*StubMappingRepository)(nil)

func (s *StubMappingRepository) Load() (entities.DependencyMapping, error) {
	return s.Mapping, s.LoadErr
}

// SpyHookConfigRepository implements repositories.HookConfigRepository in memory.
// Read parses nothing: Repos is served as configured next to Content.
type SpyHookConfigRepository struct {
	Content []byte
	Repos   []entities.HookRepo
	ReadErr error

	WriteErr    error
	WriteCalls  int
	WrittenPath string
	Written     []byte
}

var _ repositories.HookConfigRepository = (*SpyHookConfigRepository)(nil)

func (s *SpyHookConfigRepository) Read(_ string) (*entities.HookConfigDocument, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return &entities.HookConfigDocument{Content: s.Content, Repos: s.Repos}, nil
}

func (s *SpyHookConfigRepository) Write(path string, content []byte) error {
	s.WriteCalls++
	s.WrittenPath = path
	s.Written = content
	return s.WriteErr
}

// StubProjectRootRepository implements repositories.ProjectRootRepository.
type StubProjectRootRepository struct {
	Root    string
	FindErr error
}

var _ repositories.ProjectRootRepository = (*StubProjectRootRepository)(nil)

func (s *StubProjectRootRepository) Find(dir string) (string, error) {
	if s.FindErr != nil {
		return "", s.FindErr
	}
	if s.Root == "" {
		return dir, nil
	}
	return s.Root, nil
}
