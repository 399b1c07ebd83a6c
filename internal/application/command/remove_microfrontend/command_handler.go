package remove_microfrontend

import (
	"context"

	"bundle-cli/internal/domain/service/component"
	"bundle-cli/pkg/log"
)

// RemoveMicroFrontendHandler handles the RemoveMicroFrontendCommand
type RemoveMicroFrontendHandler struct {
	components component.ComponentServiceInterface
}

// Handle executes the RemoveMicroFrontendCommand
func (h *RemoveMicroFrontendHandler) Handle(ctx context.Context, cmd RemoveMicroFrontendCommand) error {
	log.Debug("Processing remove micro frontend request", "microfrontend", cmd.MicroFrontendName)
	return h.components.RemoveMicroFrontend(cmd.MicroFrontendName)
}

// NewRemoveMicroFrontendHandler creates a new RemoveMicroFrontendHandler
func NewRemoveMicroFrontendHandler(components component.ComponentServiceInterface) *RemoveMicroFrontendHandler {
	return &RemoveMicroFrontendHandler{components: components}
}
