package repositories

import "github.com/floatingpurr/sync-with-pdm/internal/domain/entities"

// HookConfigRepository reads and writes a .pre-commit-config.yaml.
// Read loads the file once; the structural view and the raw bytes come from the same buffer.
// Write replaces the file content in place, keeping its permissions. It is not atomic.
type HookConfigRepository interface {
	Read(path string) (*entities.HookConfigDocument, error)
	Write(path string, content []byte) error
}

// ScalarRenderer is the YAML emitter used to spell a single revision value.
type ScalarRenderer = entities.ScalarRenderer
