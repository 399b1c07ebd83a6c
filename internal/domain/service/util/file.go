package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bundle-cli/internal/domain/model"
)

// JSONIndent is the indentation of every JSON file the tool writes.
const JSONIndent = "    "

// CreateComponentDirectory creates the directory of a new component. The
// parent is created when missing; an existing directory is a conflict.
func CreateComponentDirectory(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return model.WrapIOError(err, "failed to create directory %s", filepath.Dir(path))
	}

	if err := os.Mkdir(path, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return model.NewConflictError("directory %s already exists", path)
		}
		return model.WrapIOError(err, "failed to create directory %s", path)
	}
	return nil
}

// RemoveDirectory deletes path recursively. A missing directory is not an error.
func RemoveDirectory(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return model.WrapIOError(err, "failed to remove directory %s", path)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// MarshalJSON encodes v the way every JSON file of a bundle is laid out:
// four space indentation, no HTML escaping and a trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSONFile overwrites path with the JSON encoding of v.
func WriteJSONFile(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.WrapIOError(err, "failed to write %s", path)
	}
	return nil
}
