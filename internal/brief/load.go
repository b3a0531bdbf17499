package brief

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a brief from a YAML (.yaml/.yml) or JSON (.json) file.
func Load(path string) (*Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brief: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a brief. ext selects the format; anything other than ".json"
// is treated as YAML, which is also a superset of JSON.
func Parse(data []byte, ext string) (*Brief, error) {
	var b Brief
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("invalid brief JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("invalid brief YAML: %w", err)
		}
	}
	return &b, nil
}

// Save writes b as YAML.
func Save(b *Brief, path string) error {
	data, err := Marshal(b)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create brief directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes b as YAML.
func Marshal(b *Brief) ([]byte, error) {
	data, err := yaml.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode brief: %w", err)
	}
	return data, nil
}
