// Package descriptor stores the bundle manifest, entando.json.
package descriptor

import (
	"encoding/json"
	"errors"
	"os"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/service/util"
	"bundle-cli/pkg/constraints"
	"bundle-cli/pkg/log"
)

// Store reads and writes the manifest of the bundle rooted at layout.Root.
type Store struct {
	path string
}

func NewStore(layout model.Layout) *Store {
	return &Store{path: layout.DescriptorPath()}
}

func (s *Store) Exists() bool {
	return util.FileExists(s.path)
}

// Read loads the manifest and refuses to return it when it breaks the rule
// tree or reuses a component name.
func (s *Store) Read() (*model.BundleDescriptor, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.WrapNotFoundError(err, "bundle descriptor %s not found", s.path)
		}
		return nil, model.WrapIOError(err, "failed to read bundle descriptor %s", s.path)
	}

	return Parse(data)
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*model.BundleDescriptor, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, model.WrapValidationError(err, "bundle descriptor is not valid JSON")
	}

	descriptor, err := constraints.Validate[model.BundleDescriptor](raw, Rules)
	if err != nil {
		var verr *constraints.ValidationError
		if errors.As(err, &verr) {
			log.Debug("Bundle descriptor failed validation", "violations", len(verr.Violations))
		}
		return nil, model.WrapValidationError(err, "bundle descriptor is invalid")
	}

	if duplicates := descriptor.DuplicateComponentNames(); len(duplicates) > 0 {
		return nil, &model.DuplicateNamesError{Names: duplicates}
	}

	return &descriptor, nil
}

// Marshal encodes a manifest exactly as Write stores it.
func Marshal(descriptor *model.BundleDescriptor) ([]byte, error) {
	return util.MarshalJSON(descriptor)
}

// Write overwrites the whole manifest.
func (s *Store) Write(descriptor *model.BundleDescriptor) error {
	if err := util.WriteJSONFile(s.path, descriptor); err != nil {
		return err
	}
	log.Debug("Bundle descriptor written", "path", s.path)
	return nil
}
