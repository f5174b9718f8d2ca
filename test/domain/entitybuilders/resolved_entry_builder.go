//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ResolvedEntryBuilder helps create test resolved entries with a fluent interface.
type ResolvedEntryBuilder struct {
	*testkit.BaseBuilder
	name       string
	repository string
	revision   string
}

// NewResolvedEntryBuilder creates a new resolved entry builder with sensible defaults.
func NewResolvedEntryBuilder() *ResolvedEntryBuilder {
	return &ResolvedEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "mypy",
		repository:  "https://github.com/pre-commit/mirrors-mypy",
		revision:    "v0.971",
	}
}

// WithName sets the package name.
func (b *ResolvedEntryBuilder) WithName(name string) *ResolvedEntryBuilder {
	b.name = name
	return b
}

// WithRepository sets the repository identity.
func (b *ResolvedEntryBuilder) WithRepository(repository string) *ResolvedEntryBuilder {
	b.repository = repository
	return b
}

// WithRevision sets the rendered revision.
func (b *ResolvedEntryBuilder) WithRevision(revision string) *ResolvedEntryBuilder {
	b.revision = revision
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *ResolvedEntryBuilder) Build() interface{} {
	return b.BuildResolvedEntry()
}

// BuildResolvedEntry creates the entry with a concrete return type.
func (b *ResolvedEntryBuilder) BuildResolvedEntry() entities.ResolvedEntry {
	return entities.ResolvedEntry{
		Name:       b.name,
		Repository: b.repository,
		Revision:   b.revision,
	}
}

// BuildPointer creates the entry and returns its address, as used in correlation lists.
func (b *ResolvedEntryBuilder) BuildPointer() *entities.ResolvedEntry {
	entry := b.BuildResolvedEntry()
	return &entry
}

// Reset clears the builder state, allowing it to be reused.
func (b *ResolvedEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "mypy"
	b.repository = "https://github.com/pre-commit/mirrors-mypy"
	b.revision = "v0.971"
	return b
}

// Clone creates a deep copy of the ResolvedEntryBuilder.
func (b *ResolvedEntryBuilder) Clone() testkit.Builder {
	return &ResolvedEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		repository:  b.repository,
		revision:    b.revision,
	}
}
