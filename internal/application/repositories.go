package application

import (
	"bundle-cli/internal/application/config"
	"bundle-cli/internal/domain/repository"
	"bundle-cli/internal/infra/catalog"
	"bundle-cli/internal/infra/descriptor"
	"bundle-cli/internal/infra/docker"
	"bundle-cli/internal/infra/dockerfile"
	"bundle-cli/internal/infra/mfeconfig"
	"bundle-cli/internal/infra/output"
)

// Repositories groups every port the domain services depend on.
type Repositories struct {
	Descriptors    repository.DescriptorRepository
	MfeConfigs     repository.MfeConfigRepository
	Catalog        repository.CatalogRepository
	Dockerfile     repository.DockerfileRepository
	Outputs        repository.OutputRepository
	ServicesStatus repository.ServicesStatusRepository
}

// NewRepositories returns the file, HTTP and Docker backed repositories of
// the bundle described by config. Nothing is opened or contacted here.
func NewRepositories(config *config.Config) Repositories {
	layout := config.GetLayout()
	return Repositories{
		Descriptors:    descriptor.NewStore(layout),
		MfeConfigs:     mfeconfig.NewStore(layout),
		Catalog:        catalog.NewClient(config.GetCatalogURL(), config.CatalogToken, config.CatalogTimeout),
		Dockerfile:     dockerfile.NewRepository(),
		Outputs:        output.NewRepository(layout),
		ServicesStatus: docker.NewServicesStatusRepository(),
	}
}
