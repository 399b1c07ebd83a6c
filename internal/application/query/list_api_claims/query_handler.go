package list_api_claims

import (
	"context"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/service/claim"
)

// ListApiClaimsQueryHandler handles the ListApiClaimsQuery
type ListApiClaimsQueryHandler struct {
	claims claim.ApiClaimServiceInterface
}

// Handle executes the ListApiClaimsQuery and returns the result
func (h *ListApiClaimsQueryHandler) Handle(ctx context.Context, query ListApiClaimsQuery) ([]model.ResolvedApiClaim, error) {
	return h.claims.ListClaims(query.MicroFrontendName)
}

// NewListApiClaimsQueryHandler creates a new ListApiClaimsQueryHandler
func NewListApiClaimsQueryHandler(claims claim.ApiClaimServiceInterface) *ListApiClaimsQueryHandler {
	return &ListApiClaimsQueryHandler{claims: claims}
}
