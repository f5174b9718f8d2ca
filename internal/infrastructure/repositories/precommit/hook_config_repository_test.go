//go:build unit

package precommit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	"github.com/floatingpurr/sync-with-pdm/internal/infrastructure/repositories/precommit"
)

const configContent = `repos:
  - repo: local
    hooks:
      - id: sync
        entry: swp
        language: system
  - repo: https://github.com/pre-commit/mirrors-mypy
    rev: v0.812
    hooks:
      - id: mypy
  - repo: meta
    hooks:
      - id: check-hooks-apply
  - repo: https://github.com/psf/black
    rev: "21.5b2" # formatter
    hooks:
      - id: black
`

func TestParseRepos(t *testing.T) {
	t.Parallel()

	t.Run("should list repositories in document order with their rev line", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(configContent)

		// when
		repos, err := precommit.ParseRepos(data)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.HookRepo{
			{Repository: "local"},
			{Repository: "https://github.com/pre-commit/mirrors-mypy", Revision: "v0.812", HasRevision: true, RevisionLine: 8},
			{Repository: "meta"},
			{Repository: "https://github.com/psf/black", Revision: "21.5b2", HasRevision: true, RevisionLine: 15},
		}, repos)
	})

	t.Run("should fail without a repos list", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("default_stages: [commit]\n")

		// when
		_, err := precommit.ParseRepos(data)

		// then
		require.ErrorIs(t, err, precommit.ErrNoRepos)
	})

	t.Run("should fail on an empty document", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("")

		// when
		_, err := precommit.ParseRepos(data)

		// then
		require.ErrorIs(t, err, precommit.ErrNoRepos)
	})

	t.Run("should fail on a repository without repo key", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("repos:\n  - rev: v1\n")

		// when
		_, err := precommit.ParseRepos(data)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repos[0]: missing repo")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("repos:\n  - repo: [unclosed\n")

		// when
		_, err := precommit.ParseRepos(data)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing pre-commit config YAML")
	})
}

func TestHookConfigRepository(t *testing.T) {
	t.Parallel()

	t.Run("should read content and repositories from the same file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), ".pre-commit-config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(configContent), 0o600))
		repo := precommit.NewHookConfigRepository()

		// when
		document, err := repo.Read(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, configContent, string(document.Content))
		assert.Len(t, document.RevisionRepos(), 2)
	})

	t.Run("should write content and keep the file mode", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), ".pre-commit-config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(configContent), 0o640))
		require.NoError(t, os.Chmod(path, 0o640))
		repo := precommit.NewHookConfigRepository()

		// when
		err := repo.Write(path, []byte("repos: []\n"))

		// then
		require.NoError(t, err)
		written, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "repos: []\n", string(written))
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("should fail to write a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		repo := precommit.NewHookConfigRepository()

		// when
		err := repo.Write(filepath.Join(t.TempDir(), "missing.yaml"), []byte("repos: []\n"))

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
