package remove_api_claim

// RemoveApiClaimCommand represents a command to remove an API claim from a micro frontend
type RemoveApiClaimCommand struct {
	MicroFrontendName string
	ClaimName         string
}

// Name returns the name of the command
func (c RemoveApiClaimCommand) Name() string {
	return "RemoveApiClaim"
}
