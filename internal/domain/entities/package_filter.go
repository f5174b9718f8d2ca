package entities

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingDevGroups is returned when the manifest declares no development dependency groups.
var ErrMissingDevGroups = errors.New("manifest has no development dependency groups")

// PackageSet is a set of package names.
type PackageSet map[string]struct{}

// NewPackageSet builds a set from the given names.
func NewPackageSet(names ...string) PackageSet {
	set := make(PackageSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name belongs to the set.
func (s PackageSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexical order.
func (s PackageSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPackageFilter computes the names of the packages whose pins are synchronized.
// Development groups are always scanned; includeAll adds the primary dependencies and
// every optional group. Names listed in skip are removed from the result.
func NewPackageFilter(manifest *Manifest, includeAll bool, skip []string) (PackageSet, error) {
	if manifest == nil || manifest.DevGroups == nil {
		return nil, ErrMissingDevGroups
	}

	filter := PackageSet{}
	for _, group := range sortedGroupNames(manifest.DevGroups) {
		if err := filter.addRequirements(manifest.DevGroups[group]); err != nil {
			return nil, fmt.Errorf("dev group %q: %w", group, err)
		}
	}

	if includeAll {
		if err := filter.addRequirements(manifest.Dependencies); err != nil {
			return nil, fmt.Errorf("project dependencies: %w", err)
		}
		for _, group := range sortedGroupNames(manifest.OptionalGroups) {
			if err := filter.addRequirements(manifest.OptionalGroups[group]); err != nil {
				return nil, fmt.Errorf("optional group %q: %w", group, err)
			}
		}
	}

	for _, name := range skip {
		delete(filter, name)
	}
	return filter, nil
}

func (s PackageSet) addRequirements(specs []string) error {
	for _, spec := range specs {
		name, err := ParseRequirementName(spec)
		if err != nil {
			return err
		}
		s[name] = struct{}{}
	}
	return nil
}

func sortedGroupNames(groups map[string][]string) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
