package entities

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
)

// ResolvedEntry is a lockfile package mapped to the revision its pre-commit
// repository should be pinned at.
type ResolvedEntry struct {
	Name       string // Lockfile package name
	Repository string // Repository identity as written in .pre-commit-config.yaml
	Revision   string // Rendered revision (e.g. "v0.971")
}

// ResolvedEntries keeps the resolved entries in lockfile order.
type ResolvedEntries []ResolvedEntry

// Resolve walks the lockfile packages in order and maps the ones selected by filter
// to their pre-commit repository. Packages without a mapping entry are dropped.
func Resolve(
	packages []LockPackage,
	filter PackageSet,
	mapping DependencyMapping,
) (ResolvedEntries, error) {
	var entries ResolvedEntries
	for _, pkg := range packages {
		if !filter.Contains(pkg.Name) {
			continue
		}

		mapped, ok := mapping[pkg.Name]
		if !ok {
			logger.Debugf("Package %q has no pre-commit counterpart, skipping", pkg.Name)
			continue
		}

		revision, err := mapped.Render(pkg.Version)
		if err != nil {
			return nil, fmt.Errorf("rendering revision of %q: %w", pkg.Name, err)
		}
		entries = append(entries, ResolvedEntry{
			Name:       pkg.Name,
			Repository: mapped.Repository,
			Revision:   revision,
		})
	}
	return entries, nil
}

// ByRepository returns the first entry pinned for the given repository identity.
func (e ResolvedEntries) ByRepository(repository string) (ResolvedEntry, bool) {
	for _, entry := range e {
		if entry.Repository == repository {
			return entry, true
		}
	}
	return ResolvedEntry{}, false
}
