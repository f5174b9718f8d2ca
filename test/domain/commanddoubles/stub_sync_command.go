//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/commands"
)

// StubSyncCommand is a stub implementation of commands.Sync.
// Results are returned per lockfile path; unknown paths get an empty result.
type StubSyncCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          map[string]*commands.SyncResult
	Calls            []commands.SyncOptions
}

var _ commands.Sync = (*StubSyncCommand)(nil)

func (s *StubSyncCommand) Execute(
	_ context.Context,
	opts commands.SyncOptions,
) (*commands.SyncResult, error) {
	s.ExecuteCallCount++
	s.Calls = append(s.Calls, opts)
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if result, ok := s.Results[opts.LockfilePath]; ok {
		return result, nil
	}
	return &commands.SyncResult{}, nil
}

// LastOpts returns the options of the most recent call.
func (s *StubSyncCommand) LastOpts() commands.SyncOptions {
	if len(s.Calls) == 0 {
		return commands.SyncOptions{}
	}
	return s.Calls[len(s.Calls)-1]
}
