package add_microservice

import (
	"context"

	"bundle-cli/internal/domain/service/component"
	"bundle-cli/pkg/log"
)

// AddMicroserviceHandler handles the AddMicroserviceCommand
type AddMicroserviceHandler struct {
	components component.ComponentServiceInterface
}

// Handle executes the AddMicroserviceCommand
func (h *AddMicroserviceHandler) Handle(ctx context.Context, cmd AddMicroserviceCommand) error {
	log.Debug("Processing add microservice request", "microservice", cmd.Microservice.Name)

	_, err := h.components.AddMicroservice(cmd.Microservice)
	return err
}

// NewAddMicroserviceHandler creates a new AddMicroserviceHandler
func NewAddMicroserviceHandler(components component.ComponentServiceInterface) *AddMicroserviceHandler {
	return &AddMicroserviceHandler{components: components}
}
