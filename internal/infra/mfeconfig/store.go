// Package mfeconfig stores the runtime overlay (mfe-config.json) of each
// micro frontend.
package mfeconfig

import (
	"encoding/json"
	"errors"
	"os"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/service/util"
	"bundle-cli/pkg/log"
)

type Store struct {
	layout model.Layout
}

func NewStore(layout model.Layout) *Store {
	return &Store{layout: layout}
}

func (s *Store) Exists(mfe model.MicroFrontend) bool {
	return util.FileExists(s.layout.MfeConfigPath(mfe))
}

// Get returns the overlay of mfe. The only check is that the file holds JSON.
func (s *Store) Get(mfe model.MicroFrontend) (*model.MfeConfig, error) {
	path := s.layout.MfeConfigPath(mfe)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.WrapNotFoundError(err, "runtime configuration of micro frontend %s not found", mfe.Name)
		}
		return nil, model.WrapIOError(err, "failed to read %s", path)
	}

	var config model.MfeConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, model.WrapValidationError(err, "%s is not valid JSON", path)
	}
	return &config, nil
}

func (s *Store) Write(mfe model.MicroFrontend, config *model.MfeConfig) error {
	dir := s.layout.MfePublicPath(mfe)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return model.WrapIOError(err, "failed to create directory %s", dir)
	}

	path := s.layout.MfeConfigPath(mfe)
	if err := util.WriteJSONFile(path, config); err != nil {
		return err
	}
	log.Debug("Runtime configuration written", "microfrontend", mfe.Name, "path", path)
	return nil
}
