package style

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

// LoadFromTOML parses a user-defined style sheet from TOML data. Unlike
// rc overlays, which silently drop foreign keys, sheet files are validated
// strictly: every key must belong to the style-key set.
func LoadFromTOML(data []byte) (params.Params, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("style: parse TOML: %w", err)
	}
	return stValidateSheet(raw)
}

// LoadFromYAML parses a user-defined style sheet from YAML data with the
// same strict validation as LoadFromTOML.
func LoadFromYAML(data []byte) (params.Params, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("style: parse YAML: %w", err)
	}
	return stValidateSheet(raw)
}

// LoadFile reads a style sheet, choosing the format from the file
// extension (.toml/.tml or .yaml/.yml).
func LoadFile(path string) (params.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read sheet: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return LoadFromTOML(data)
	case ".yaml", ".yml":
		return LoadFromYAML(data)
	default:
		return nil, fmt.Errorf("style: unsupported sheet format %q", filepath.Ext(path))
	}
}

// SaveToTOML serializes a style dictionary to TOML bytes.
func SaveToTOML(p params.Params) ([]byte, error) {
	if _, err := stValidateSheet(p); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]any(p)); err != nil {
		return nil, fmt.Errorf("style: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// stValidateSheet rejects keys outside the style-key set and normalizes
// decoded values into the store's vocabulary.
func stValidateSheet(raw map[string]any) (params.Params, error) {
	p := make(params.Params, len(raw))
	for k, v := range raw {
		if !stIsStyleKey(k) {
			return nil, fmt.Errorf("style: sheet key %q is not a style parameter", k)
		}
		p[k] = params.Canonical(v)
	}
	return p, nil
}
