package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/idilsaglam/freefire/internal/model"
)

// Read-only JSON import: a file holding an array of components.
// Sessions never write back; nothing is persisted between runs.

// Load reads the components listed in path, in file order.
// Field limits are not checked here; the session validates on entry.
func Load(path string) ([]model.Component, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(b)
}

// Decode parses a JSON array of components.
func Decode(b []byte) ([]model.Component, error) {
	var items []model.Component
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Component{}
	}
	return items, nil
}
