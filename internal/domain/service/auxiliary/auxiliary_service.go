// Package auxiliary manages the auxiliary services (databases, identity
// providers) a bundle enables for local development.
package auxiliary

import (
	"context"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/repository"
	"bundle-cli/pkg/log"
)

type AuxiliaryServiceInterface interface {
	EnableService(name string) error

	DisableService(name string) error

	GetServicesStatus(ctx context.Context) ([]model.ServiceStatus, error)
}

type AuxiliaryService struct {
	descriptors repository.DescriptorRepository
	statuses    repository.ServicesStatusRepository
}

var _ AuxiliaryServiceInterface = (*AuxiliaryService)(nil)

func NewAuxiliaryService(descriptors repository.DescriptorRepository, statuses repository.ServicesStatusRepository) *AuxiliaryService {
	return &AuxiliaryService{
		descriptors: descriptors,
		statuses:    statuses,
	}
}

func (s *AuxiliaryService) EnableService(name string) error {
	if err := model.ValidateIdentifier("service", name); err != nil {
		return err
	}

	descriptor, err := s.descriptors.Read()
	if err != nil {
		return err
	}
	if descriptor.ServiceIndex(name) >= 0 {
		return model.NewConflictError("service %s is already enabled", name)
	}

	descriptor.Svc = append(descriptor.Svc, name)
	if err := s.descriptors.Write(descriptor); err != nil {
		return err
	}

	log.Info("Auxiliary service enabled", "service", name)
	return nil
}

func (s *AuxiliaryService) DisableService(name string) error {
	descriptor, err := s.descriptors.Read()
	if err != nil {
		return err
	}

	index := descriptor.ServiceIndex(name)
	if index < 0 {
		return model.NewNotFoundError("service %s is not enabled", name)
	}

	descriptor.Svc = append(descriptor.Svc[:index], descriptor.Svc[index+1:]...)
	if err := s.descriptors.Write(descriptor); err != nil {
		return err
	}

	log.Info("Auxiliary service disabled", "service", name)
	return nil
}

// GetServicesStatus reports every enabled service in manifest order.
func (s *AuxiliaryService) GetServicesStatus(ctx context.Context) ([]model.ServiceStatus, error) {
	descriptor, err := s.descriptors.Read()
	if err != nil {
		return nil, err
	}
	if len(descriptor.Svc) == 0 {
		return []model.ServiceStatus{}, nil
	}

	return s.statuses.GetServicesStatus(ctx, descriptor.Name, descriptor.Svc)
}
