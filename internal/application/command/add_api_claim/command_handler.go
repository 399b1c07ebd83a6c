package add_api_claim

import (
	"context"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/service/claim"
	"bundle-cli/pkg/log"
)

// AddApiClaimHandler handles the AddApiClaimCommand
type AddApiClaimHandler struct {
	claims claim.ApiClaimServiceInterface
}

// Handle executes the AddApiClaimCommand
func (h *AddApiClaimHandler) Handle(ctx context.Context, cmd AddApiClaimCommand) error {
	log.Debug("Processing add API claim request", "microfrontend", cmd.MicroFrontendName, "claim", cmd.Claim.Name, "type", cmd.Claim.Type)

	var err error
	switch cmd.Claim.Type {
	case model.ApiClaimInternal:
		_, err = h.claims.AddInternalClaim(cmd.MicroFrontendName, cmd.Claim, cmd.ServiceURL)
	case model.ApiClaimExternal:
		_, err = h.claims.AddExternalClaim(ctx, cmd.MicroFrontendName, cmd.Claim)
	default:
		err = model.NewValidationError("invalid API claim type %q", cmd.Claim.Type)
	}
	return err
}

// NewAddApiClaimHandler creates a new AddApiClaimHandler
func NewAddApiClaimHandler(claims claim.ApiClaimServiceInterface) *AddApiClaimHandler {
	return &AddApiClaimHandler{claims: claims}
}
