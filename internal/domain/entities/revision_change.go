package entities

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// RevisionChange describes one rewritten "rev:" line.
type RevisionChange struct {
	Name       string
	Repository string
	From       string
	To         string
	Line       int
}

// String is the notice printed for the change.
func (c RevisionChange) String() string {
	return fmt.Sprintf("[%s] %s -> rev: %s", c.Name, c.Repository, c.To)
}

// IsDowngrade reports whether the new revision is an older semantic version than
// the current one. Revisions that are not semver never count as downgrades.
func (c RevisionChange) IsDowngrade() bool {
	from := normalizeVersion(c.From)
	to := normalizeVersion(c.To)
	if !semver.IsValid(from) || !semver.IsValid(to) {
		return false
	}
	return semver.Compare(to, from) < 0
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
