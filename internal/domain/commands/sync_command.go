package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	"github.com/floatingpurr/sync-with-pdm/internal/domain/repositories"
)

// ErrConfigModified signals that at least one pre-commit config was (or, in a dry run,
// would be) modified. The CLI turns it into a non-zero exit status.
var ErrConfigModified = errors.New("pre-commit config modified")

// Sync is the interface for the sync command.
type Sync interface {
	Execute(ctx context.Context, opts SyncOptions) (*SyncResult, error)
}

// SyncOptions holds the inputs of a single lockfile synchronization.
type SyncOptions struct {
	LockfilePath string
	ManifestPath string
	ConfigPath   string
	IncludeAll   bool                       // Also scan main and optional dependencies
	Skip         []string                   // Packages never synchronized
	Mapping      entities.DependencyMapping // Entries added to (or replacing) the built-in table
	DryRun       bool
}

// SyncResult is the outcome of a synchronization.
type SyncResult struct {
	Changes []entities.RevisionChange
	Written bool
}

// Changed reports whether any revision differs from the lockfile.
func (r *SyncResult) Changed() bool {
	return len(r.Changes) > 0
}

// SyncCommand brings the rev pins of a pre-commit config in line with a pdm.lock.
type SyncCommand struct {
	lockfiles   repositories.LockfileRepository
	manifests   repositories.ManifestRepository
	hookConfigs repositories.HookConfigRepository
	mappings    repositories.MappingRepository
	renderer    repositories.ScalarRenderer
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	lockfiles repositories.LockfileRepository,
	manifests repositories.ManifestRepository,
	hookConfigs repositories.HookConfigRepository,
	mappings repositories.MappingRepository,
	renderer repositories.ScalarRenderer,
) *SyncCommand {
	return &SyncCommand{
		lockfiles:   lockfiles,
		manifests:   manifests,
		hookConfigs: hookConfigs,
		mappings:    mappings,
		renderer:    renderer,
	}
}

// Execute synchronizes opts.ConfigPath with opts.LockfilePath. Nothing is written
// when any input fails to load or when no revision changes.
func (it *SyncCommand) Execute(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := it.resolve(opts)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Resolved %d managed packages from %s", len(entries), opts.LockfilePath)

	document, err := it.hookConfigs.Read(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	revisionRepos := document.RevisionRepos()
	patch, err := entities.PatchRevisions(
		document.Content,
		entities.CorrelateRepositories(revisionRepos, entries),
		it.renderer,
	)
	if err != nil {
		return nil, fmt.Errorf("patching %s: %w", opts.ConfigPath, err)
	}
	warnOnMisalignment(opts.ConfigPath, revisionRepos, patch.RevisionLines)

	result := &SyncResult{Changes: patch.Changes}
	for _, change := range patch.Changes {
		if change.IsDowngrade() {
			logger.Warnf("[%s] %s goes back from %s to %s", change.Name, change.Repository, change.From, change.To)
		}
	}

	if !patch.Changed() {
		logger.Debugf("%s is already in sync with %s", opts.ConfigPath, opts.LockfilePath)
		return result, nil
	}
	if opts.DryRun {
		logger.Infof("[DRY RUN] Would update %d revision(s) in %s", len(patch.Changes), opts.ConfigPath)
		return result, nil
	}

	if writeErr := it.hookConfigs.Write(opts.ConfigPath, patch.Content); writeErr != nil {
		return nil, writeErr
	}
	result.Written = true
	return result, nil
}

// resolve loads the manifest, the mapping table and the lockfile and returns the
// entries the config should be pinned to.
func (it *SyncCommand) resolve(opts SyncOptions) (entities.ResolvedEntries, error) {
	manifest, err := it.manifests.Load(opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	filter, err := entities.NewPackageFilter(manifest, opts.IncludeAll, opts.Skip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.ManifestPath, err)
	}

	mapping, err := it.mappings.Load()
	if err != nil {
		return nil, err
	}
	if len(opts.Mapping) > 0 {
		mapping = mapping.Merge(opts.Mapping)
		if validateErr := mapping.Validate(); validateErr != nil {
			return nil, validateErr
		}
	}

	lockfile, err := it.lockfiles.Load(opts.LockfilePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.LockfilePath, err)
	}
	return entities.Resolve(lockfile.Packages, filter, mapping)
}

// warnOnMisalignment reports when the rev lines found in the text do not line up
// with the rev keys of the parsed document. Revisions are still paired by position.
func warnOnMisalignment(path string, repos []entities.HookRepo, revisionLines []int) {
	if len(repos) != len(revisionLines) {
		logger.Warnf(
			"%s: %d repositories carry a rev but %d rev lines were found; only the first %d are paired",
			path, len(repos), len(revisionLines), min(len(repos), len(revisionLines)),
		)
		return
	}
	for i, repo := range repos {
		if repo.RevisionLine != 0 && repo.RevisionLine != revisionLines[i] {
			logger.Warnf(
				"%s: rev of %s is on line %d but was paired with line %d",
				path, repo.Repository, repo.RevisionLine, revisionLines[i],
			)
		}
	}
}
