//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ManifestBuilder helps create test manifests with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	dependencies   []string
	optionalGroups map[string][]string
	devGroups      map[string][]string
}

// NewManifestBuilder creates a manifest builder with an empty dev group table.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		optionalGroups: map[string][]string{},
		devGroups:      map[string][]string{},
	}
}

// WithDependencies sets [project].dependencies.
func (b *ManifestBuilder) WithDependencies(specs ...string) *ManifestBuilder {
	b.dependencies = specs
	return b
}

// WithOptionalGroup adds a [project.optional-dependencies] group.
func (b *ManifestBuilder) WithOptionalGroup(name string, specs ...string) *ManifestBuilder {
	b.optionalGroups[name] = specs
	return b
}

// WithDevGroup adds a development dependency group.
func (b *ManifestBuilder) WithDevGroup(name string, specs ...string) *ManifestBuilder {
	b.devGroups[name] = specs
	return b
}

// WithoutDevGroups removes the development group table altogether.
func (b *ManifestBuilder) WithoutDevGroups() *ManifestBuilder {
	b.devGroups = nil
	return b
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type.
func (b *ManifestBuilder) BuildManifest() *entities.Manifest {
	return &entities.Manifest{
		Dependencies:   b.dependencies,
		OptionalGroups: b.optionalGroups,
		DevGroups:      b.devGroups,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.dependencies = nil
	b.optionalGroups = map[string][]string{}
	b.devGroups = map[string][]string{}
	return b
}

// Clone creates a copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	return &ManifestBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		dependencies:   b.dependencies,
		optionalGroups: b.optionalGroups,
		devGroups:      b.devGroups,
	}
}
