package disable_service

import (
	"context"

	"bundle-cli/internal/domain/service/auxiliary"
	"bundle-cli/pkg/log"
)

// DisableServiceHandler handles the DisableServiceCommand
type DisableServiceHandler struct {
	services auxiliary.AuxiliaryServiceInterface
}

// Handle executes the DisableServiceCommand
func (h *DisableServiceHandler) Handle(ctx context.Context, cmd DisableServiceCommand) error {
	log.Debug("Processing disable service request", "service", cmd.ServiceName)
	return h.services.DisableService(cmd.ServiceName)
}

// NewDisableServiceHandler creates a new DisableServiceHandler
func NewDisableServiceHandler(services auxiliary.AuxiliaryServiceInterface) *DisableServiceHandler {
	return &DisableServiceHandler{services: services}
}
