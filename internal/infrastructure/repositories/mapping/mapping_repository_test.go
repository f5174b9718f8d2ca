//go:build unit

package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	"github.com/floatingpurr/sync-with-pdm/internal/infrastructure/repositories/mapping"
)

func TestMappingRepository_Load(t *testing.T) {
	t.Parallel()

	t.Run("should load the built-in table", func(t *testing.T) {
		t.Parallel()

		// given
		repo := mapping.NewMappingRepository()

		// when
		table, err := repo.Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MappingEntry{
			Repository: "https://github.com/pre-commit/mirrors-mypy",
			Revision:   "v${rev}",
		}, table["mypy"])
		assert.Equal(t, "${rev}", table["black"].Revision)
		assert.Contains(t, table.Names(), "ruff")
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("should decode entries", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("tool:\n  repo: https://example.com/tool\n  rev: release-${rev}\n")

		// when
		table, err := mapping.Parse(data)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DependencyMapping{
			"tool": {Repository: "https://example.com/tool", Revision: "release-${rev}"},
		}, table)
	})

	t.Run("should reject an entry without placeholder", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("tool:\n  repo: https://example.com/tool\n  rev: v1\n")

		// when
		_, err := mapping.Parse(data)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidMapping)
	})

	t.Run("should reject malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("tool: [unclosed\n")

		// when
		_, err := mapping.Parse(data)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing dependency mapping")
	})
}
