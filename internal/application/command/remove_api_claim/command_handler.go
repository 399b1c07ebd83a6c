package remove_api_claim

import (
	"context"

	"bundle-cli/internal/domain/service/claim"
	"bundle-cli/pkg/log"
)

// RemoveApiClaimHandler handles the RemoveApiClaimCommand
type RemoveApiClaimHandler struct {
	claims claim.ApiClaimServiceInterface
}

// Handle executes the RemoveApiClaimCommand
func (h *RemoveApiClaimHandler) Handle(ctx context.Context, cmd RemoveApiClaimCommand) error {
	log.Debug("Processing remove API claim request", "microfrontend", cmd.MicroFrontendName, "claim", cmd.ClaimName)
	return h.claims.RemoveClaim(cmd.MicroFrontendName, cmd.ClaimName)
}

// NewRemoveApiClaimHandler creates a new RemoveApiClaimHandler
func NewRemoveApiClaimHandler(claims claim.ApiClaimServiceInterface) *RemoveApiClaimHandler {
	return &RemoveApiClaimHandler{claims: claims}
}
