// Package output cleans build artifacts left behind by removed components.
package output

import (
	"errors"
	"os"

	"bundle-cli/internal/domain/model"
	"bundle-cli/pkg/log"
)

type Repository struct {
	layout model.Layout
}

func NewRepository(layout model.Layout) *Repository {
	return &Repository{layout: layout}
}

// RemoveMicroserviceOutput deletes the build output and the generated plugin
// descriptor of a microservice. Missing artifacts are ignored.
func (r *Repository) RemoveMicroserviceOutput(name string) error {
	buildDir := r.layout.OutputPath("microservices", name)
	if err := os.RemoveAll(buildDir); err != nil {
		return model.WrapIOError(err, "failed to remove %s", buildDir)
	}

	pluginDescriptor := r.layout.OutputPath("descriptors", "plugins", name+".yaml")
	if err := os.Remove(pluginDescriptor); err != nil && !errors.Is(err, os.ErrNotExist) {
		return model.WrapIOError(err, "failed to remove %s", pluginDescriptor)
	}

	log.Debug("Microservice output removed", "microservice", name)
	return nil
}
