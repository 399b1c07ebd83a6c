package list_api_claims

// ListApiClaimsQuery represents a query to list API claims. An empty
// MicroFrontendName lists the claims of every micro frontend.
type ListApiClaimsQuery struct {
	MicroFrontendName string
}

// Name returns the name of the query
func (q ListApiClaimsQuery) Name() string {
	return "ListApiClaims"
}
