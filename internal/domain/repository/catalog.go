package repository

import (
	"context"

	"bundle-cli/internal/domain/model"
)

// CatalogRepository looks up microservices of bundles installed on the remote
// platform.
type CatalogRepository interface {
	// GetBundleMicroservice returns a not found error when the catalog does not
	// know the service and a network error for any other failure.
	GetBundleMicroservice(ctx context.Context, bundleID, serviceName string) (model.CatalogMicroservice, error)
}
