package get_services_status

import (
	"context"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/service/auxiliary"
	"bundle-cli/pkg/log"
)

// GetServicesStatusQueryHandler handles the GetServicesStatusQuery
type GetServicesStatusQueryHandler struct {
	services auxiliary.AuxiliaryServiceInterface
}

// Handle executes the GetServicesStatusQuery and returns the result
func (h *GetServicesStatusQueryHandler) Handle(ctx context.Context, query GetServicesStatusQuery) ([]model.ServiceStatus, error) {
	log.Debug("Processing get services status query")
	return h.services.GetServicesStatus(ctx)
}

// NewGetServicesStatusQueryHandler creates a new GetServicesStatusQueryHandler
func NewGetServicesStatusQueryHandler(services auxiliary.AuxiliaryServiceInterface) *GetServicesStatusQueryHandler {
	return &GetServicesStatusQueryHandler{services: services}
}
