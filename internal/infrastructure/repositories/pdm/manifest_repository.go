package pdm

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
)

type manifestDocument struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		PDM struct {
			DevDependencies map[string][]string `toml:"dev-dependencies"`
		} `toml:"pdm"`
	} `toml:"tool"`
	// PEP 735 groups may mix requirement strings with {include-group = "..."} tables.
	DependencyGroups map[string][]any `toml:"dependency-groups"`
}

// ManifestRepository reads the dependency groups of a pyproject.toml.
type ManifestRepository struct{}

// NewManifestRepository creates a new ManifestRepository.
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

// Load reads and parses the manifest at path.
func (it *ManifestRepository) Load(path string) (*entities.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project manifest
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses pyproject.toml content.
func ParseManifest(data []byte) (*entities.Manifest, error) {
	var doc manifestDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest TOML: %w", err)
	}

	manifest := &entities.Manifest{
		Dependencies:   doc.Project.Dependencies,
		OptionalGroups: doc.Project.OptionalDependencies,
	}

	if doc.Tool.PDM.DevDependencies != nil || doc.DependencyGroups != nil {
		manifest.DevGroups = make(map[string][]string)
	}
	for group, specs := range doc.Tool.PDM.DevDependencies {
		manifest.DevGroups[group] = append(manifest.DevGroups[group], specs...)
	}
	for group, items := range doc.DependencyGroups {
		for i, item := range items {
			switch value := item.(type) {
			case string:
				manifest.DevGroups[group] = append(manifest.DevGroups[group], value)
			case map[string]any:
				logger.Debugf("Ignoring table entry %d of dependency group %q", i, group)
			default:
				return nil, fmt.Errorf(
					"dependency-groups.%s[%d]: %w: unexpected %T",
					group, i, entities.ErrMalformedRequirement, item,
				)
			}
		}
	}

	return manifest, nil
}
