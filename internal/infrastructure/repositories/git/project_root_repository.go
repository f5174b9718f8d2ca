package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"
)

// ProjectRootRepository finds the worktree root of the git repository enclosing a directory.
type ProjectRootRepository struct{}

// NewProjectRootRepository creates a new ProjectRootRepository.
func NewProjectRootRepository() *ProjectRootRepository {
	return &ProjectRootRepository{}
}

// Find returns the worktree root enclosing dir, or dir itself when dir is not
// inside a non-bare git repository.
func (it *ProjectRootRepository) Find(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		logger.Debugf("%s is not inside a git repository", dir)
		return dir, nil
	}
	if err != nil {
		return "", fmt.Errorf("opening git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return dir, nil
	}
	if err != nil {
		return "", fmt.Errorf("opening git worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}
