package add_api_claim

import "bundle-cli/internal/domain/model"

// AddApiClaimCommand represents a command to add an API claim to a micro frontend.
// ServiceURL is only used by internal claims.
type AddApiClaimCommand struct {
	MicroFrontendName string
	Claim             model.ApiClaim
	ServiceURL        string
}

// Name returns the name of the command
func (c AddApiClaimCommand) Name() string {
	return "AddApiClaim"
}
