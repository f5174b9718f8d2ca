package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/floatingpurr/sync-with-pdm/config"
	"github.com/floatingpurr/sync-with-pdm/internal/domain/commands"
	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	"github.com/floatingpurr/sync-with-pdm/internal/domain/repositories"
)

// SyncController handles the root command: one synchronization per lockfile argument.
type SyncController struct {
	command commands.Sync
	roots   repositories.ProjectRootRepository
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync, roots repositories.ProjectRootRepository) *SyncController {
	return &SyncController{command: command, roots: roots}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "swp [flags] LOCKFILE...",
		Short: "Sync .pre-commit-config.yaml revisions with pdm.lock",
		Long: `Synchronize the rev pins of .pre-commit-config.yaml with the versions
pinned in one or more pdm.lock files.

Only the rev values that differ are rewritten; comments, quoting and
indentation are kept as they are. The exit status is 1 when a file was
modified, which makes the tool usable as a pre-commit hook.`,
	}
}

// AddFlags adds the sync flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("all", false, "Scan all dependencies in pdm.lock (main, optional and dev)")
	cmd.Flags().StringSlice("skip", nil, "Packages to skip (repeat the flag or use a comma-separated list)")
	cmd.Flags().String("config", "", "Path to the .pre-commit-config.yaml file (default: "+config.DefaultHookConfigFile+")")
	cmd.Flags().String("manifest", "", "Path to the pyproject.toml file (default: "+config.DefaultManifestFile+")")
	cmd.Flags().String("settings", "", "Path to a sync-with-pdm settings file (default: auto-detect)")
	cmd.Flags().Bool("dry-run", false, "Show what would be changed without writing")
}

// Execute synchronizes the pre-commit config with every lockfile in args, in order.
// It returns commands.ErrConfigModified when any revision changed.
func (it *SyncController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	baseOpts, err := it.buildOptions(cmd)
	if err != nil {
		return err
	}

	modified := false
	for _, lockfile := range args {
		opts := baseOpts
		opts.LockfilePath = lockfile

		result, execErr := it.command.Execute(ctx, opts)
		if execErr != nil {
			return fmt.Errorf("%s: %w", lockfile, execErr)
		}

		for _, change := range result.Changes {
			fmt.Fprintln(cmd.OutOrStdout(), change.String())
		}
		modified = modified || result.Changed()
	}

	if modified {
		return commands.ErrConfigModified
	}
	return nil
}

// buildOptions merges flags, the settings file and defaults. Flags win over settings;
// default and settings paths are relative to the project root.
func (it *SyncController) buildOptions(cmd *cobra.Command) (commands.SyncOptions, error) {
	flags := cmd.Flags()
	includeAll, _ := flags.GetBool("all")
	skip, _ := flags.GetStringSlice("skip")
	configPath, _ := flags.GetString("config")
	manifestPath, _ := flags.GetString("manifest")
	settingsPath, _ := flags.GetString("settings")
	dryRun, _ := flags.GetBool("dry-run")

	cwd, err := os.Getwd()
	if err != nil {
		return commands.SyncOptions{}, fmt.Errorf("resolving working directory: %w", err)
	}
	root, err := it.roots.Find(cwd)
	if err != nil {
		return commands.SyncOptions{}, err
	}
	logger.Debugf("Project root: %s", root)

	settings, err := loadSettings(root, settingsPath)
	if err != nil {
		return commands.SyncOptions{}, err
	}

	opts := commands.SyncOptions{
		ManifestPath: config.ResolvePath(root, settings.Manifest, config.DefaultManifestFile),
		ConfigPath:   config.ResolvePath(root, settings.Config, config.DefaultHookConfigFile),
		IncludeAll:   settings.All,
		Skip:         settings.Skip,
		Mapping:      settings.Mapping,
		DryRun:       dryRun,
	}
	if flags.Changed("all") {
		opts.IncludeAll = includeAll
	}
	if flags.Changed("skip") {
		opts.Skip = skip
	}
	if configPath != "" {
		opts.ConfigPath = configPath
	}
	if manifestPath != "" {
		opts.ManifestPath = manifestPath
	}
	return opts, nil
}

// loadSettings reads the explicit settings file, or the auto-detected one under root.
// A missing auto-detected file yields empty settings.
func loadSettings(root, path string) (*config.Settings, error) {
	if path == "" {
		found, err := config.FindConfigFile(root)
		if errors.Is(err, config.ErrNotFound) {
			return &config.Settings{}, nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}

	logger.Debugf("Using settings file: %s", path)
	return config.Load(path)
}
