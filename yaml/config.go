// Package yaml loads uwdocs configuration files.
package yaml

import (
	"errors"
	"os"

	"github.com/fwojciec/uwdocs"
	"github.com/goccy/go-yaml"
)

// LoadConfig reads the YAML file at path over uwdocs.DefaultConfig. Keys
// absent from the file keep their defaults. The result is not validated.
func LoadConfig(path string) (uwdocs.Config, error) {
	cfg := uwdocs.DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, uwdocs.Errorf(uwdocs.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return cfg, err
	}

	// Decoding a document without keys would zero cfg.
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return cfg, uwdocs.Errorf(uwdocs.EINVALID, "config file %s: %v", path, err)
	}
	if len(keys) == 0 {
		return cfg, nil
	}

	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return cfg, uwdocs.Errorf(uwdocs.EINVALID, "config file %s: %v", path, err)
	}
	return cfg, nil
}
