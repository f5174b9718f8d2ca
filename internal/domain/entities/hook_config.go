package entities

// HookConfigDocument is a .pre-commit-config.yaml read once into memory.
// Repos is derived from Content, so both views always describe the same bytes.
type HookConfigDocument struct {
	Content []byte
	Repos   []HookRepo
}

// HookRepo is one element of the top-level "repos" list.
type HookRepo struct {
	Repository   string
	Revision     string
	HasRevision  bool // false for the "local" and "meta" repositories
	RevisionLine int  // 1-based line of the rev key, 0 when absent
}

// RevisionRepos returns the repositories that carry a rev, in document order.
func (d *HookConfigDocument) RevisionRepos() []HookRepo {
	repos := make([]HookRepo, 0, len(d.Repos))
	for _, repo := range d.Repos {
		if repo.HasRevision {
			repos = append(repos, repo)
		}
	}
	return repos
}
