package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// ApiClaimType is the discriminator of API claims.
type ApiClaimType string

const (
	ApiClaimInternal ApiClaimType = "internal"
	ApiClaimExternal ApiClaimType = "external"
)

var ApiClaimTypes = []string{string(ApiClaimInternal), string(ApiClaimExternal)}

// ApiClaim declares that a micro frontend calls a microservice. Bundle is set
// only on external claims and references the bundle that hosts the service.
type ApiClaim struct {
	Name        string       `json:"name"`
	Type        ApiClaimType `json:"type"`
	ServiceName string       `json:"serviceName"`
	Bundle      string       `json:"bundle,omitempty"`
	Extra       Extra        `json:"-"`
}

func (c ApiClaim) MarshalJSON() ([]byte, error) {
	type apiClaim ApiClaim
	data, err := marshalJSON(apiClaim(c))
	if err != nil {
		return nil, err
	}
	return withExtra(data, c.Extra)
}

func (c *ApiClaim) UnmarshalJSON(data []byte) error {
	type apiClaim ApiClaim
	var in apiClaim
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	extra, err := splitExtra(data, in)
	if err != nil {
		return err
	}
	*c = ApiClaim(in)
	c.Extra = extra
	return nil
}

func NewInternalClaim(name, serviceName string) ApiClaim {
	return ApiClaim{Name: name, Type: ApiClaimInternal, ServiceName: serviceName}
}

func NewExternalClaim(name, serviceName, bundle string) ApiClaim {
	return ApiClaim{Name: name, Type: ApiClaimExternal, ServiceName: serviceName, Bundle: bundle}
}

// ResolvedApiClaim is a claim together with the URL cached in the overlay of
// its micro frontend. URL is empty when the claim was never resolved.
type ResolvedApiClaim struct {
	MicroFrontend string   `json:"microfrontend"`
	Claim         ApiClaim `json:"claim"`
	URL           string   `json:"url,omitempty"`
}

// CatalogMicroservice is what the remote catalog knows about a microservice
// of an installed bundle.
type CatalogMicroservice struct {
	IngressPath string `json:"ingressPath"`
}

const bundleIDLength = 8

// BundleID derives the catalog id of a bundle from its reference, e.g.
// "docker://registry.hub.docker.com/entando/my-bundle".
func BundleID(bundleRef string) string {
	ref := strings.TrimPrefix(strings.TrimSpace(bundleRef), "docker://")
	sum := sha256.Sum256([]byte(ref))
	return hex.EncodeToString(sum[:])[:bundleIDLength]
}
