package yaml

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// JSONToYAML converts JSON bytes to YAML bytes, keeping object keys in the
// order they appear in the input.
func JSONToYAML(jsonBytes []byte) ([]byte, error) {
	if !json.Valid(jsonBytes) {
		return nil, fmt.Errorf("error parsing JSON: invalid document")
	}

	// JSON is a subset of YAML, so the document can be decoded directly into
	// an ordered map.
	var obj interface{}
	if err := yaml.UnmarshalWithOptions(jsonBytes, &obj, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}

	yamlBytes, err := yaml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("error converting to YAML: %w", err)
	}

	return yamlBytes, nil
}

// MarshalYAML encodes v as JSON first so that json tags and custom
// MarshalJSON methods decide the field names and order.
func MarshalYAML(v interface{}) ([]byte, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding JSON: %w", err)
	}
	return JSONToYAML(jsonBytes)
}
