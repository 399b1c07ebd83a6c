package repository

import (
	"context"

	"bundle-cli/internal/domain/model"
)

// ServicesStatusRepository reports the runtime state of auxiliary services.
type ServicesStatusRepository interface {
	GetServicesStatus(ctx context.Context, bundleName string, services []string) ([]model.ServiceStatus, error)
}
