package entities

// Manifest holds the dependency groups declared by a pyproject.toml.
// Each group is the ordered list of requirement specifiers as written.
type Manifest struct {
	// Dependencies is [project].dependencies.
	Dependencies []string
	// OptionalGroups is [project.optional-dependencies].
	OptionalGroups map[string][]string
	// DevGroups merges [tool.pdm.dev-dependencies] and [dependency-groups].
	// Nil means neither table is declared.
	DevGroups map[string][]string
}

// Lockfile is the subset of pdm.lock read by the sync.
type Lockfile struct {
	Packages []LockPackage
}

// LockPackage is one [[package]] table of the lockfile.
type LockPackage struct {
	Name    string
	Version string
}
