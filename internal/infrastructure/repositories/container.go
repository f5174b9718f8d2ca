package repositories

import (
	domainRepos "github.com/floatingpurr/sync-with-pdm/internal/domain/repositories"
	gitRepo "github.com/floatingpurr/sync-with-pdm/internal/infrastructure/repositories/git"
	mappingRepo "github.com/floatingpurr/sync-with-pdm/internal/infrastructure/repositories/mapping"
	pdmRepo "github.com/floatingpurr/sync-with-pdm/internal/infrastructure/repositories/pdm"
	preCommitRepo "github.com/floatingpurr/sync-with-pdm/internal/infrastructure/repositories/precommit"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []any{
		func() domainRepos.LockfileRepository { return pdmRepo.NewLockfileRepository() },
		func() domainRepos.ManifestRepository { return pdmRepo.NewManifestRepository() },
		func() domainRepos.HookConfigRepository { return preCommitRepo.NewHookConfigRepository() },
		func() domainRepos.ScalarRenderer { return preCommitRepo.NewScalarRenderer() },
		func() domainRepos.MappingRepository { return mappingRepo.NewMappingRepository() },
		func() domainRepos.ProjectRootRepository { return gitRepo.NewProjectRootRepository() },
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}
