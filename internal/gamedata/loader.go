package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	return decode[T](filename, content)
}

// LoadFile reads and unmarshals a JSON file from disk.
// Use this for player-supplied data such as custom levels.
func LoadFile[T any](path string) (T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return decode[T](path, content)
}

func decode[T any](name string, content []byte) (T, error) {
	var result T
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", name, err)
	}
	return result, nil
}
