package precommit

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
)

// ErrNoRepos is returned when the document has no top-level "repos" list.
var ErrNoRepos = errors.New("pre-commit config has no repos list")

// HookConfigRepository reads and writes .pre-commit-config.yaml files.
type HookConfigRepository struct{}

// NewHookConfigRepository creates a new HookConfigRepository.
func NewHookConfigRepository() *HookConfigRepository {
	return &HookConfigRepository{}
}

// Read loads the file once and derives the repository list from the same bytes.
func (it *HookConfigRepository) Read(path string) (*entities.HookConfigDocument, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is the pre-commit config
	if err != nil {
		return nil, fmt.Errorf("reading pre-commit config: %w", err)
	}

	repos, err := ParseRepos(content)
	if err != nil {
		return nil, err
	}
	return &entities.HookConfigDocument{Content: content, Repos: repos}, nil
}

// Write replaces the content of path, keeping its permissions.
func (it *HookConfigRepository) Write(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("writing pre-commit config: %w", err)
	}
	if writeErr := os.WriteFile(path, content, info.Mode().Perm()); writeErr != nil {
		return fmt.Errorf("writing pre-commit config: %w", writeErr)
	}
	return nil
}

// ParseRepos returns the elements of the top-level "repos" list in document order.
func ParseRepos(content []byte) ([]entities.HookRepo, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parsing pre-commit config YAML: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrNoRepos
	}

	doc := resolveAlias(root.Content[0])
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrNoRepos)
	}
	_, reposNode := lookup(doc, "repos")
	if reposNode == nil || reposNode.Kind != yaml.SequenceNode {
		return nil, ErrNoRepos
	}

	repos := make([]entities.HookRepo, 0, len(reposNode.Content))
	for i, item := range reposNode.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("repos[%d]: expected a mapping", i)
		}

		_, repoNode := lookup(item, "repo")
		if repoNode == nil || repoNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("repos[%d]: missing repo", i)
		}

		repo := entities.HookRepo{Repository: repoNode.Value}
		if revKey, revNode := lookup(item, "rev"); revNode != nil {
			if revNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("repos[%d]: rev must be a scalar", i)
			}
			repo.HasRevision = true
			repo.Revision = revNode.Value
			repo.RevisionLine = revKey.Line
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// lookup returns the key and value nodes of key in a mapping node.
func lookup(mapping *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i], resolveAlias(mapping.Content[i+1])
		}
	}
	return nil, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}
