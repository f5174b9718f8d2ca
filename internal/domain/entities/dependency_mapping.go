package entities

import (
	"errors"
	"fmt"
	"os"
	"sort"
)

// revisionPlaceholder is the only variable a revision template may reference.
const revisionPlaceholder = "rev"

// ErrInvalidMapping is returned when a mapping entry cannot be used to render a revision.
var ErrInvalidMapping = errors.New("invalid dependency mapping")

// MappingEntry tells which pre-commit repository a lockfile package maps to and
// how its revision is spelled there (e.g. "v${rev}").
type MappingEntry struct {
	Repository string `yaml:"repo"`
	Revision   string `yaml:"rev"`
}

// DependencyMapping maps a lockfile package name to its pre-commit repository.
type DependencyMapping map[string]MappingEntry

// Render substitutes the lockfile version into the revision template.
func (e MappingEntry) Render(version string) (string, error) {
	var unknown []string
	rendered := os.Expand(e.Revision, func(name string) string {
		if name == revisionPlaceholder {
			return version
		}
		unknown = append(unknown, name)
		return ""
	})
	if len(unknown) > 0 {
		return "", fmt.Errorf("%w: template %q references unknown placeholder %q",
			ErrInvalidMapping, e.Revision, unknown[0])
	}
	return rendered, nil
}

// Validate checks that every entry has a repository and a template that uses ${rev}.
func (m DependencyMapping) Validate() error {
	for _, name := range m.Names() {
		entry := m[name]
		if entry.Repository == "" {
			return fmt.Errorf("%w: %q has no repository", ErrInvalidMapping, name)
		}

		used := false
		os.Expand(entry.Revision, func(placeholder string) string {
			used = used || placeholder == revisionPlaceholder
			return ""
		})
		if !used {
			return fmt.Errorf("%w: %q revision %q does not contain ${%s}",
				ErrInvalidMapping, name, entry.Revision, revisionPlaceholder)
		}
		if _, err := entry.Render(""); err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}
	}
	return nil
}

// Merge returns a new mapping where the entries of overrides replace those of m.
func (m DependencyMapping) Merge(overrides DependencyMapping) DependencyMapping {
	merged := make(DependencyMapping, len(m)+len(overrides))
	for name, entry := range m {
		merged[name] = entry
	}
	for name, entry := range overrides {
		merged[name] = entry
	}
	return merged
}

// Names returns the mapped package names in lexical order.
func (m DependencyMapping) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
