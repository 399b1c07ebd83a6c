package enable_service

import (
	"context"

	"bundle-cli/internal/domain/service/auxiliary"
	"bundle-cli/pkg/log"
)

// EnableServiceHandler handles the EnableServiceCommand
type EnableServiceHandler struct {
	services auxiliary.AuxiliaryServiceInterface
}

// Handle executes the EnableServiceCommand
func (h *EnableServiceHandler) Handle(ctx context.Context, cmd EnableServiceCommand) error {
	log.Debug("Processing enable service request", "service", cmd.ServiceName)
	return h.services.EnableService(cmd.ServiceName)
}

// NewEnableServiceHandler creates a new EnableServiceHandler
func NewEnableServiceHandler(services auxiliary.AuxiliaryServiceInterface) *EnableServiceHandler {
	return &EnableServiceHandler{services: services}
}
