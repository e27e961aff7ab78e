package scale

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

// LoadFromTOML parses a user-defined context sheet from TOML data. Sheet
// files are validated strictly: every key must belong to the context-key
// set and every value must be numeric.
func LoadFromTOML(data []byte) (params.Params, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scale: parse TOML: %w", err)
	}
	return scValidateSheet(raw)
}

// LoadFromYAML parses a user-defined context sheet from YAML data with the
// same strict validation as LoadFromTOML.
func LoadFromYAML(data []byte) (params.Params, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scale: parse YAML: %w", err)
	}
	return scValidateSheet(raw)
}

// LoadFile reads a context sheet, choosing the format from the file
// extension (.toml/.tml or .yaml/.yml).
func LoadFile(path string) (params.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scale: read sheet: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return LoadFromTOML(data)
	case ".yaml", ".yml":
		return LoadFromYAML(data)
	default:
		return nil, fmt.Errorf("scale: unsupported sheet format %q", filepath.Ext(path))
	}
}

// SaveToTOML serializes a context dictionary to TOML bytes.
func SaveToTOML(p params.Params) ([]byte, error) {
	if _, err := scValidateSheet(p); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]any(p)); err != nil {
		return nil, fmt.Errorf("scale: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// scValidateSheet rejects non-context keys and non-numeric values.
func scValidateSheet(raw map[string]any) (params.Params, error) {
	p := make(params.Params, len(raw))
	for k, v := range raw {
		if !scIsContextKey(k) {
			return nil, fmt.Errorf("scale: sheet key %q is not a context parameter", k)
		}
		cv := params.Canonical(v)
		switch cv.(type) {
		case float64, []float64:
		default:
			return nil, fmt.Errorf("scale: sheet key %q has non-numeric value %v", k, v)
		}
		p[k] = cv
	}
	return p, nil
}
