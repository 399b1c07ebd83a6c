package remove_microservice

import (
	"context"

	"bundle-cli/internal/domain/service/component"
	"bundle-cli/pkg/log"
)

// RemoveMicroserviceHandler handles the RemoveMicroserviceCommand
type RemoveMicroserviceHandler struct {
	components component.ComponentServiceInterface
}

// Handle executes the RemoveMicroserviceCommand
func (h *RemoveMicroserviceHandler) Handle(ctx context.Context, cmd RemoveMicroserviceCommand) error {
	log.Debug("Processing remove microservice request", "microservice", cmd.MicroserviceName)
	return h.components.RemoveMicroservice(cmd.MicroserviceName)
}

// NewRemoveMicroserviceHandler creates a new RemoveMicroserviceHandler
func NewRemoveMicroserviceHandler(components component.ComponentServiceInterface) *RemoveMicroserviceHandler {
	return &RemoveMicroserviceHandler{components: components}
}
