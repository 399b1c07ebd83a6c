// Package claim manages the API claims of micro frontends and mirrors the
// resolved URL of every claim into the runtime configuration of its owner.
//
// A claim moves from absent to claimed (manifest only) to resolved (manifest
// and runtime configuration). Nothing is written until every check, including
// the catalog lookup of external claims, has passed. A failure between the
// manifest write and the runtime configuration write leaves the claim
// claimed but unresolved; running the removal and adding it again repairs it.
package claim

import (
	"context"
	"net/url"
	"strings"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/repository"
	"bundle-cli/pkg/log"
)

type ApiClaimServiceInterface interface {
	AddInternalClaim(mfeName string, claim model.ApiClaim, serviceURL string) (string, error)

	AddExternalClaim(ctx context.Context, mfeName string, claim model.ApiClaim) (string, error)

	RemoveClaim(mfeName, claimName string) error

	ListClaims(mfeName string) ([]model.ResolvedApiClaim, error)
}

type ApiClaimService struct {
	descriptors repository.DescriptorRepository
	mfeConfigs  repository.MfeConfigRepository
	catalog     repository.CatalogRepository
	baseURL     string
}

var _ ApiClaimServiceInterface = (*ApiClaimService)(nil)

// NewApiClaimService creates the service. baseURL is the platform address
// external claims are resolved against; it may be empty when only internal
// claims are used.
func NewApiClaimService(
	descriptors repository.DescriptorRepository,
	mfeConfigs repository.MfeConfigRepository,
	catalog repository.CatalogRepository,
	baseURL string,
) *ApiClaimService {
	return &ApiClaimService{
		descriptors: descriptors,
		mfeConfigs:  mfeConfigs,
		catalog:     catalog,
		baseURL:     baseURL,
	}
}

// AddInternalClaim adds a claim on a microservice of this bundle, reachable
// at serviceURL. It returns the URL stored in the runtime configuration.
func (s *ApiClaimService) AddInternalClaim(mfeName string, claim model.ApiClaim, serviceURL string) (string, error) {
	if claim.Type != model.ApiClaimInternal {
		return "", model.NewValidationError("API claim %s is not an internal claim", claim.Name)
	}
	if err := validateClaimNames(mfeName, claim); err != nil {
		return "", err
	}
	if err := validateServiceURL(serviceURL); err != nil {
		return "", err
	}

	descriptor, err := s.descriptors.Read()
	if err != nil {
		return "", err
	}
	if descriptor.MicroserviceIndex(claim.ServiceName) < 0 {
		return "", model.NewNotFoundError("microservice %s not found", claim.ServiceName)
	}

	mfe, err := claimableMicroFrontend(descriptor, mfeName, claim.Name)
	if err != nil {
		return "", err
	}

	if err := s.persist(descriptor, mfe, claim, serviceURL); err != nil {
		return "", err
	}
	return serviceURL, nil
}

// AddExternalClaim adds a claim on a microservice of another bundle. The
// ingress path of the service is looked up in the catalog before anything is
// written.
func (s *ApiClaimService) AddExternalClaim(ctx context.Context, mfeName string, claim model.ApiClaim) (string, error) {
	if claim.Type != model.ApiClaimExternal {
		return "", model.NewValidationError("API claim %s is not an external claim", claim.Name)
	}
	if s.baseURL == "" {
		return "", model.NewEnvironmentError("the platform base URL is not set; external API claims cannot be resolved")
	}
	if err := validateClaimNames(mfeName, claim); err != nil {
		return "", err
	}
	if strings.TrimSpace(claim.Bundle) == "" {
		return "", model.NewValidationError("external API claim %s requires a bundle reference", claim.Name)
	}

	descriptor, err := s.descriptors.Read()
	if err != nil {
		return "", err
	}
	mfe, err := claimableMicroFrontend(descriptor, mfeName, claim.Name)
	if err != nil {
		return "", err
	}

	bundleID := model.BundleID(claim.Bundle)
	log.Debug("Resolving external API claim", "claim", claim.Name, "bundle", claim.Bundle, "bundle_id", bundleID, "service", claim.ServiceName)

	ms, err := s.catalog.GetBundleMicroservice(ctx, bundleID, claim.ServiceName)
	if err != nil {
		return "", err
	}

	serviceURL := JoinURL(s.baseURL, ms.IngressPath)
	if err := s.persist(descriptor, mfe, claim, serviceURL); err != nil {
		return "", err
	}
	return serviceURL, nil
}

// RemoveClaim drops a claim from the manifest and, when the runtime
// configuration exists, its URL entry.
func (s *ApiClaimService) RemoveClaim(mfeName, claimName string) error {
	descriptor, err := s.descriptors.Read()
	if err != nil {
		return err
	}

	mfeIndex := descriptor.MicroFrontendIndex(mfeName)
	if mfeIndex < 0 {
		return model.NewNotFoundError("micro frontend %s not found", mfeName)
	}
	mfe := &descriptor.MicroFrontends[mfeIndex]

	claimIndex := mfe.ClaimIndex(claimName)
	if claimIndex < 0 {
		return model.NewNotFoundError("API claim %s not found", claimName)
	}

	mfe.ApiClaims = append(mfe.ApiClaims[:claimIndex], mfe.ApiClaims[claimIndex+1:]...)
	if err := s.descriptors.Write(descriptor); err != nil {
		return err
	}

	if s.mfeConfigs.Exists(*mfe) {
		config, err := s.mfeConfigs.Get(*mfe)
		if err != nil {
			return err
		}
		if config.RemoveApiURL(claimName) {
			if err := s.mfeConfigs.Write(*mfe, config); err != nil {
				return err
			}
		}
	}

	log.Info("API claim removed", "microfrontend", mfeName, "claim", claimName)
	return nil
}

// ListClaims returns the claims of mfeName, or of every micro frontend when
// mfeName is empty, in manifest order with the URL cached for each of them.
func (s *ApiClaimService) ListClaims(mfeName string) ([]model.ResolvedApiClaim, error) {
	descriptor, err := s.descriptors.Read()
	if err != nil {
		return nil, err
	}

	mfes := descriptor.MicroFrontends
	if mfeName != "" {
		index := descriptor.MicroFrontendIndex(mfeName)
		if index < 0 {
			return nil, model.NewNotFoundError("micro frontend %s not found", mfeName)
		}
		mfes = mfes[index : index+1]
	}

	claims := []model.ResolvedApiClaim{}
	for _, mfe := range mfes {
		var config *model.MfeConfig
		if len(mfe.ApiClaims) > 0 && s.mfeConfigs.Exists(mfe) {
			if config, err = s.mfeConfigs.Get(mfe); err != nil {
				return nil, err
			}
		}

		for _, claim := range mfe.ApiClaims {
			resolved := model.ResolvedApiClaim{MicroFrontend: mfe.Name, Claim: claim}
			resolved.URL, _ = config.ApiURL(claim.Name)
			claims = append(claims, resolved)
		}
	}

	return claims, nil
}

// persist appends claim to mfe, writes the manifest and then records
// serviceURL in the runtime configuration of mfe. The runtime configuration
// is loaded first so that a broken file stops the operation before any write.
func (s *ApiClaimService) persist(descriptor *model.BundleDescriptor, mfe *model.MicroFrontend, claim model.ApiClaim, serviceURL string) error {
	config := &model.MfeConfig{}
	if s.mfeConfigs.Exists(*mfe) {
		existing, err := s.mfeConfigs.Get(*mfe)
		if err != nil {
			return err
		}
		config = existing
	}

	mfe.ApiClaims = append(mfe.ApiClaims, claim)
	if err := s.descriptors.Write(descriptor); err != nil {
		return err
	}

	config.SetApiURL(claim.Name, serviceURL)
	if err := s.mfeConfigs.Write(*mfe, config); err != nil {
		return err
	}

	log.Info("API claim added", "microfrontend", mfe.Name, "claim", claim.Name, "type", claim.Type, "url", serviceURL)
	return nil
}

// claimableMicroFrontend returns the micro frontend that will own a new claim
// named claimName.
func claimableMicroFrontend(descriptor *model.BundleDescriptor, mfeName, claimName string) (*model.MicroFrontend, error) {
	index := descriptor.MicroFrontendIndex(mfeName)
	if index < 0 {
		return nil, model.NewNotFoundError("micro frontend %s not found", mfeName)
	}

	mfe := &descriptor.MicroFrontends[index]
	if mfe.ClaimIndex(claimName) >= 0 {
		return nil, model.NewConflictError("API claim %s already exists", claimName)
	}
	return mfe, nil
}

func validateClaimNames(mfeName string, claim model.ApiClaim) error {
	if err := model.ValidateIdentifier("micro frontend", mfeName); err != nil {
		return err
	}
	if err := model.ValidateIdentifier("API claim", claim.Name); err != nil {
		return err
	}
	return model.ValidateIdentifier("microservice", claim.ServiceName)
}

// validateServiceURL accepts absolute URLs with a scheme and a host.
func validateServiceURL(serviceURL string) error {
	u, err := url.ParseRequestURI(serviceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return model.NewValidationError("invalid service URL %q", serviceURL)
	}
	return nil
}

// JoinURL appends an ingress path to the platform base URL.
func JoinURL(baseURL, ingressPath string) string {
	if ingressPath != "" && !strings.HasPrefix(ingressPath, "/") {
		ingressPath = "/" + ingressPath
	}
	return strings.TrimSuffix(baseURL, "/") + ingressPath
}
