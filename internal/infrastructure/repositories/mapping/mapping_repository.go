package mapping

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
)

//go:embed mapping.yaml
var builtinMapping []byte

// MappingRepository serves the mapping table shipped with the binary.
type MappingRepository struct {
	data []byte
}

// NewMappingRepository creates a repository over the built-in table.
func NewMappingRepository() *MappingRepository {
	return &MappingRepository{data: builtinMapping}
}

// Load decodes and validates the table.
func (it *MappingRepository) Load() (entities.DependencyMapping, error) {
	return Parse(it.data)
}

// Parse decodes a YAML mapping table of the form "name: {repo: ..., rev: ...}".
func Parse(data []byte) (entities.DependencyMapping, error) {
	mapping := entities.DependencyMapping{}
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parsing dependency mapping: %w", err)
	}
	if err := mapping.Validate(); err != nil {
		return nil, err
	}
	return mapping, nil
}
