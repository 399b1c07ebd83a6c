package get_descriptor

import (
	"context"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/repository"
	"bundle-cli/pkg/log"
)

// GetDescriptorQueryHandler handles the GetDescriptorQuery
type GetDescriptorQueryHandler struct {
	descriptors repository.DescriptorRepository
}

// Handle executes the GetDescriptorQuery and returns the result
func (h *GetDescriptorQueryHandler) Handle(ctx context.Context, query GetDescriptorQuery) (*model.BundleDescriptor, error) {
	descriptor, err := h.descriptors.Read()
	if err != nil {
		return nil, err
	}

	log.Debug("Bundle descriptor loaded", "bundle", descriptor.Name,
		"microservices", len(descriptor.Microservices), "microfrontends", len(descriptor.MicroFrontends))
	return descriptor, nil
}

// NewGetDescriptorQueryHandler creates a new GetDescriptorQueryHandler
func NewGetDescriptorQueryHandler(descriptors repository.DescriptorRepository) *GetDescriptorQueryHandler {
	return &GetDescriptorQueryHandler{descriptors: descriptors}
}
