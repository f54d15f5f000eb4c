// Package config loads the toolbox's optional configuration file: default
// field order, default workspace path, and output preferences, read as
// either YAML or JSON depending on file extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// File is the decoded configuration document.
type File struct {
	FieldOrder string            `yaml:"field_order" json:"field_order"`
	Workspace  string            `yaml:"workspace" json:"workspace"`
	Color      bool              `yaml:"color" json:"color"`
	CacheSize  int               `yaml:"cache_size" json:"cache_size"`
	Extra      map[string]string `yaml:"-" json:"-"`
}

// Load reads and decodes the configuration at path, sniffing the format
// from its extension (.yaml/.yml or .json).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: %s: unrecognized extension %q (want .yaml, .yml, or .json)", path, ext)
	}

	f.Extra = normalizeExtra(data, ext(path))
	return &f, nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// normalizeExtra re-decodes the document into a generic map and snake-cases
// every key, so callers can look up vendor-specific extension fields (e.g.
// a CI pipeline's own "fieldOrder" spelling) under one convention.
func normalizeExtra(data []byte, extension string) map[string]string {
	raw := map[string]any{}
	var err error
	switch extension {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[strcase.ToSnake(k)] = s
		}
	}
	return out
}
