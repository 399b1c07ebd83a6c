// Package component adds and removes the microservices and micro frontends of
// a bundle, keeping the manifest, the component directories and the
// Dockerfile in step.
package component

import (
	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/domain/repository"
	"bundle-cli/internal/domain/service/util"
	"bundle-cli/pkg/log"
)

type ComponentServiceInterface interface {
	AddMicroservice(ms model.Microservice) (*model.Microservice, error)

	RemoveMicroservice(name string) error

	AddMicroFrontend(mfe model.MicroFrontend) (*model.MicroFrontend, error)

	RemoveMicroFrontend(name string) error
}

type ComponentService struct {
	layout      model.Layout
	descriptors repository.DescriptorRepository
	dockerfile  repository.DockerfileRepository
	outputs     repository.OutputRepository
}

var _ ComponentServiceInterface = (*ComponentService)(nil)

func NewComponentService(
	layout model.Layout,
	descriptors repository.DescriptorRepository,
	dockerfile repository.DockerfileRepository,
	outputs repository.OutputRepository,
) *ComponentService {
	return &ComponentService{
		layout:      layout,
		descriptors: descriptors,
		dockerfile:  dockerfile,
		outputs:     outputs,
	}
}

// AddMicroservice registers ms and creates its directory. The directory is
// created before the manifest is written; if the write fails the directory
// stays behind.
func (s *ComponentService) AddMicroservice(ms model.Microservice) (*model.Microservice, error) {
	if err := ms.Validate(); err != nil {
		return nil, err
	}

	descriptor, err := s.descriptors.Read()
	if err != nil {
		return nil, err
	}
	if err := checkNameAvailable(descriptor, ms.Name); err != nil {
		return nil, err
	}

	if err := util.CreateComponentDirectory(s.layout.MicroservicePath(ms.Name)); err != nil {
		return nil, err
	}

	if ms.HealthCheckPath == "" {
		ms.HealthCheckPath = model.DefaultHealthCheckPath
	}
	descriptor.Microservices = append(descriptor.Microservices, ms)
	if err := s.descriptors.Write(descriptor); err != nil {
		return nil, err
	}

	log.Info("Microservice added", "microservice", ms.Name, "stack", ms.Stack)
	return &ms, nil
}

// RemoveMicroservice deletes the directory, the manifest entry and the build
// output of a microservice. API claims that still target it are kept.
func (s *ComponentService) RemoveMicroservice(name string) error {
	descriptor, err := s.descriptors.Read()
	if err != nil {
		return err
	}

	index := descriptor.MicroserviceIndex(name)
	if index < 0 {
		return model.NewNotFoundError("microservice %s not found", name)
	}

	if err := util.RemoveDirectory(s.layout.MicroservicePath(name)); err != nil {
		return err
	}

	if refs := descriptor.InternalClaimsOn(name); len(refs) > 0 {
		log.Warn("Removed microservice is still referenced by API claims", "microservice", name, "claims", refs)
	}

	descriptor.Microservices = append(descriptor.Microservices[:index], descriptor.Microservices[index+1:]...)
	if err := s.descriptors.Write(descriptor); err != nil {
		return err
	}

	if err := s.outputs.RemoveMicroserviceOutput(name); err != nil {
		return err
	}

	log.Info("Microservice removed", "microservice", name)
	return nil
}

// AddMicroFrontend registers mfe with its defaults, creates its directory and
// adds it to the Dockerfile.
func (s *ComponentService) AddMicroFrontend(mfe model.MicroFrontend) (*model.MicroFrontend, error) {
	mfe.ApplyDefaults()
	if err := mfe.Validate(); err != nil {
		return nil, err
	}

	descriptor, err := s.descriptors.Read()
	if err != nil {
		return nil, err
	}
	if err := checkNameAvailable(descriptor, mfe.Name); err != nil {
		return nil, err
	}

	if err := util.CreateComponentDirectory(s.layout.MicroFrontendPath(mfe.Name)); err != nil {
		return nil, err
	}

	if mfe.ApiClaims == nil {
		mfe.ApiClaims = []model.ApiClaim{}
	}
	descriptor.MicroFrontends = append(descriptor.MicroFrontends, mfe)
	if err := s.descriptors.Write(descriptor); err != nil {
		return nil, err
	}

	if err := s.dockerfile.AddMicroFrontendEntry(s.layout.Root, mfe.Name); err != nil {
		return nil, err
	}

	log.Info("Micro frontend added", "microfrontend", mfe.Name, "type", mfe.Type(), "stack", mfe.Stack)
	return &mfe, nil
}

// RemoveMicroFrontend deletes the directory of a micro frontend, which holds
// its runtime configuration, then its manifest entry and Dockerfile entry.
func (s *ComponentService) RemoveMicroFrontend(name string) error {
	descriptor, err := s.descriptors.Read()
	if err != nil {
		return err
	}

	index := descriptor.MicroFrontendIndex(name)
	if index < 0 {
		return model.NewNotFoundError("micro frontend %s not found", name)
	}

	if err := util.RemoveDirectory(s.layout.MicroFrontendPath(name)); err != nil {
		return err
	}

	descriptor.MicroFrontends = append(descriptor.MicroFrontends[:index], descriptor.MicroFrontends[index+1:]...)
	if err := s.descriptors.Write(descriptor); err != nil {
		return err
	}

	if err := s.dockerfile.RemoveMicroFrontendEntry(s.layout.Root, name); err != nil {
		return err
	}

	log.Info("Micro frontend removed", "microfrontend", name)
	return nil
}

// checkNameAvailable enforces one namespace across both component lists.
func checkNameAvailable(descriptor *model.BundleDescriptor, name string) error {
	if descriptor.MicroserviceIndex(name) >= 0 {
		return model.NewConflictError("microservice %s already exists", name)
	}
	if descriptor.MicroFrontendIndex(name) >= 0 {
		return model.NewConflictError("micro frontend %s already exists", name)
	}
	return nil
}
