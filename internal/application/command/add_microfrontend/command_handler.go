package add_microfrontend

import (
	"context"

	"bundle-cli/internal/domain/service/component"
	"bundle-cli/pkg/log"
)

// AddMicroFrontendHandler handles the AddMicroFrontendCommand
type AddMicroFrontendHandler struct {
	components component.ComponentServiceInterface
}

// Handle executes the AddMicroFrontendCommand
func (h *AddMicroFrontendHandler) Handle(ctx context.Context, cmd AddMicroFrontendCommand) error {
	log.Debug("Processing add micro frontend request", "microfrontend", cmd.MicroFrontend.Name)

	_, err := h.components.AddMicroFrontend(cmd.MicroFrontend)
	return err
}

// NewAddMicroFrontendHandler creates a new AddMicroFrontendHandler
func NewAddMicroFrontendHandler(components component.ComponentServiceInterface) *AddMicroFrontendHandler {
	return &AddMicroFrontendHandler{components: components}
}
