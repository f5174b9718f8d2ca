package entities

import (
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// ErrRevisionLineInvariant means a line matched the revision pattern but could not be
// decomposed back into the same bytes.
var ErrRevisionLineInvariant = errors.New("revision line decomposition mismatch")

// ScalarRenderer renders a YAML scalar the way an emitter would write it.
// quote is the quote character observed on the original line ("" for plain).
type ScalarRenderer interface {
	RenderScalar(value, quote string) (string, error)
}

// PatchResult is the outcome of PatchRevisions.
type PatchResult struct {
	Content       []byte
	Changes       []RevisionChange
	LineCount     int
	RevisionLines []int // 1-based lines that matched the revision pattern
}

// Changed reports whether any revision was rewritten.
func (r *PatchResult) Changed() bool {
	return len(r.Changes) > 0
}

// CorrelateRepositories returns, for every repository carrying a rev, the entry
// resolved for its identity or nil. Repositories without a rev are left out.
func CorrelateRepositories(repos []HookRepo, entries ResolvedEntries) []*ResolvedEntry {
	correlation := make([]*ResolvedEntry, 0, len(repos))
	for _, repo := range repos {
		if !repo.HasRevision {
			continue
		}
		entry, ok := entries.ByRepository(repo.Repository)
		if !ok {
			correlation = append(correlation, nil)
			continue
		}
		correlation = append(correlation, &entry)
	}
	return correlation
}

// PatchRevisions rewrites the revision lines of content. The Nth matched line is
// paired with correlation[N]; pairing stops at the shorter of the two. Only the
// value token of lines whose revision differs is replaced.
func PatchRevisions(
	content []byte,
	correlation []*ResolvedEntry,
	renderer ScalarRenderer,
) (*PatchResult, error) {
	lines := SplitLines(string(content))

	var indices []int
	for i, line := range lines {
		if IsRevisionLine(line) {
			indices = append(indices, i)
		}
	}

	result := &PatchResult{LineCount: len(lines)}
	for _, idx := range indices {
		result.RevisionLines = append(result.RevisionLines, idx+1)
	}

	for i := 0; i < len(indices) && i < len(correlation); i++ {
		entry := correlation[i]
		if entry == nil {
			continue
		}

		idx := indices[i]
		match, ok := ParseRevisionLine(lines[idx])
		if !ok || match.String() != lines[idx] {
			return nil, fmt.Errorf("%w: line %d", ErrRevisionLineInvariant, idx+1)
		}

		current := match.CurrentValue()
		if current == entry.Revision {
			logger.Debugf("[%s] %s already at %s", entry.Name, entry.Repository, current)
			continue
		}

		rendered, err := renderer.RenderScalar(entry.Revision, match.Quote)
		if err != nil {
			return nil, fmt.Errorf("rendering revision %q: %w", entry.Revision, err)
		}
		lines[idx] = match.WithValue(rendered)
		result.Changes = append(result.Changes, RevisionChange{
			Name:       entry.Name,
			Repository: entry.Repository,
			From:       current,
			To:         entry.Revision,
			Line:       idx + 1,
		})
	}

	if result.Changed() {
		result.Content = []byte(strings.Join(lines, ""))
	} else {
		result.Content = content
	}
	return result, nil
}
