//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/commands"
	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	"github.com/floatingpurr/sync-with-pdm/internal/infrastructure/controllers"
	"github.com/floatingpurr/sync-with-pdm/test/domain/commanddoubles"
	"github.com/floatingpurr/sync-with-pdm/test/infrastructure/repositorydoubles"
)

func newCommand(controller *controllers.SyncController, out *bytes.Buffer, args ...string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "swp",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          controller.Execute,
	}
	controller.AddFlags(cmd)
	cmd.SetOut(out)
	cmd.SetArgs(args)
	return cmd
}

func TestSyncController_GetBind(t *testing.T) {
	t.Parallel()

	t.Run("should describe the root command", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewSyncController(
			&commanddoubles.StubSyncCommand{},
			&repositorydoubles.StubProjectRootRepository{},
		)

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "swp [flags] LOCKFILE...", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})
}

func TestSyncController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should run once per lockfile and resolve default paths against the root", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		stub := &commanddoubles.StubSyncCommand{}
		controller := controllers.NewSyncController(stub, &repositorydoubles.StubProjectRootRepository{Root: root})
		var out bytes.Buffer
		cmd := newCommand(controller, &out, "a/pdm.lock", "b/pdm.lock")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		require.Equal(t, 2, stub.ExecuteCallCount)
		assert.Equal(t, "a/pdm.lock", stub.Calls[0].LockfilePath)
		assert.Equal(t, "b/pdm.lock", stub.Calls[1].LockfilePath)
		assert.Equal(t, filepath.Join(root, ".pre-commit-config.yaml"), stub.LastOpts().ConfigPath)
		assert.Equal(t, filepath.Join(root, "pyproject.toml"), stub.LastOpts().ManifestPath)
		assert.False(t, stub.LastOpts().IncludeAll)
		assert.Empty(t, out.String())
	})

	t.Run("should print changes and report a modified config", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{
			Results: map[string]*commands.SyncResult{
				"pdm.lock": {
					Changes: []entities.RevisionChange{{
						Name:       "mypy",
						Repository: "https://github.com/pre-commit/mirrors-mypy",
						From:       "v0.812",
						To:         "v0.971",
						Line:       12,
					}},
					Written: true,
				},
			},
		}
		controller := controllers.NewSyncController(stub, &repositorydoubles.StubProjectRootRepository{Root: t.TempDir()})
		var out bytes.Buffer
		cmd := newCommand(controller, &out, "pdm.lock")

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, commands.ErrConfigModified)
		assert.Equal(t, "[mypy] https://github.com/pre-commit/mirrors-mypy -> rev: v0.971\n", out.String())
	})

	t.Run("should pass flags through", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{}
		controller := controllers.NewSyncController(stub, &repositorydoubles.StubProjectRootRepository{Root: t.TempDir()})
		var out bytes.Buffer
		cmd := newCommand(controller, &out,
			"--all", "--skip", "mypy,black", "--skip", "flake8",
			"--config", "custom.yaml", "--manifest", "other.toml", "--dry-run", "pdm.lock")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		opts := stub.LastOpts()
		assert.True(t, opts.IncludeAll)
		assert.Equal(t, []string{"mypy", "black", "flake8"}, opts.Skip)
		assert.Equal(t, "custom.yaml", opts.ConfigPath)
		assert.Equal(t, "other.toml", opts.ManifestPath)
		assert.True(t, opts.DryRun)
	})

	t.Run("should read the settings file and let flags override it", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		settings := "all: true\n" +
			"skip: [black]\n" +
			"config: hooks/pre-commit.yaml\n" +
			"mapping:\n" +
			"  tool:\n" +
			"    repo: https://example.com/tool\n" +
			"    rev: v${rev}\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, ".sync-with-pdm.yaml"), []byte(settings), 0o600))
		stub := &commanddoubles.StubSyncCommand{}
		controller := controllers.NewSyncController(stub, &repositorydoubles.StubProjectRootRepository{Root: root})
		var out bytes.Buffer
		cmd := newCommand(controller, &out, "--all=false", "pdm.lock")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		opts := stub.LastOpts()
		assert.False(t, opts.IncludeAll)
		assert.Equal(t, []string{"black"}, opts.Skip)
		assert.Equal(t, filepath.Join(root, "hooks", "pre-commit.yaml"), opts.ConfigPath)
		assert.Equal(t, entities.DependencyMapping{
			"tool": {Repository: "https://example.com/tool", Revision: "v${rev}"},
		}, opts.Mapping)
	})

	t.Run("should fail on an explicit settings file that does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{}
		controller := controllers.NewSyncController(stub, &repositorydoubles.StubProjectRootRepository{Root: t.TempDir()})
		var out bytes.Buffer
		cmd := newCommand(controller, &out, "--settings", filepath.Join(t.TempDir(), "missing.yaml"), "pdm.lock")

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should stop at the first failing lockfile", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{ExecuteErr: errors.New("broken lockfile")}
		controller := controllers.NewSyncController(stub, &repositorydoubles.StubProjectRootRepository{Root: t.TempDir()})
		var out bytes.Buffer
		cmd := newCommand(controller, &out, "first.lock", "second.lock")

		// when
		err := cmd.Execute()

		// then
		require.Error(t, err)
		assert.Equal(t, "first.lock: broken lockfile", err.Error())
		assert.Equal(t, 1, stub.ExecuteCallCount)
	})

	t.Run("should fail when the project root cannot be found", func(t *testing.T) {
		t.Parallel()

		// given
		rootErr := errors.New("corrupt repository")
		stub := &commanddoubles.StubSyncCommand{}
		controller := controllers.NewSyncController(stub, &repositorydoubles.StubProjectRootRepository{FindErr: rootErr})
		var out bytes.Buffer
		cmd := newCommand(controller, &out, "pdm.lock")

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, rootErr)
	})
}
