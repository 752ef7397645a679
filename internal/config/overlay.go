package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverlay reads a YAML file into a generic key/value mapping. The
// content is opaque at this layer: no schema validation is applied, that is
// the consuming domain's responsibility. A missing file is reported as
// ErrOverlayNotFound.
func LoadOverlay(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrOverlayNotFound, path)
		}
		return nil, fmt.Errorf("read overlay %s: %w", path, err)
	}

	var overlay map[string]any
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse overlay %s: %w", path, err)
	}
	return overlay, nil
}
