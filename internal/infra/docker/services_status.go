// Package docker reads the state of auxiliary services from the Docker Engine.
package docker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"bundle-cli/internal/domain/model"
	"bundle-cli/pkg/log"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

const (
	composeProjectLabel = "com.docker.compose.project"
	composeServiceLabel = "com.docker.compose.service"
)

// ContainerLister is the part of the Docker client the repository needs.
type ContainerLister interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
}

// ServicesStatusRepository reports auxiliary service containers started by
// docker compose under the project "<bundle>-svc". A lister that implements
// io.Closer is closed when the query returns.
type ServicesStatusRepository struct {
	newLister func() (ContainerLister, error)
}

// NewServicesStatusRepository connects to the Docker daemon configured in the
// environment for every query.
func NewServicesStatusRepository() *ServicesStatusRepository {
	return &ServicesStatusRepository{
		newLister: func() (ContainerLister, error) {
			return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		},
	}
}

// NewServicesStatusRepositoryWithLister uses lister instead of a Docker client.
// The caller keeps ownership of lister.
func NewServicesStatusRepositoryWithLister(lister ContainerLister) *ServicesStatusRepository {
	return &ServicesStatusRepository{
		newLister: func() (ContainerLister, error) { return struct{ ContainerLister }{lister}, nil },
	}
}

// ComposeProject is the compose project auxiliary services of a bundle run in.
func ComposeProject(bundleName string) string {
	return bundleName + "-svc"
}

func (r *ServicesStatusRepository) GetServicesStatus(ctx context.Context, bundleName string, services []string) ([]model.ServiceStatus, error) {
	lister, err := r.newLister()
	if err != nil {
		return nil, model.WrapEnvironmentError(err, "failed to create Docker client")
	}
	if closer, ok := lister.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Warn("Failed to close Docker client", "error", err)
			}
		}()
	}

	statuses := make([]model.ServiceStatus, 0, len(services))
	for _, service := range services {
		filterArgs := filters.NewArgs()
		filterArgs.Add("label", fmt.Sprintf("%s=%s", composeProjectLabel, ComposeProject(bundleName)))
		filterArgs.Add("label", fmt.Sprintf("%s=%s", composeServiceLabel, service))

		dockerContainers, err := lister.ContainerList(ctx, container.ListOptions{All: true, Filters: filterArgs})
		if err != nil {
			log.Error("Failed to list containers for service", "service", service, "error", err)
			return nil, model.WrapEnvironmentError(err, "failed to list containers of service %s", service)
		}

		status := model.ServiceStatus{
			Name:       service,
			Containers: make([]model.Container, 0, len(dockerContainers)),
		}
		for _, dockerContainer := range dockerContainers {
			status.Containers = append(status.Containers, model.Container{
				ID:         dockerContainer.ID,
				Name:       containerName(dockerContainer.Names),
				StatusCode: MapDockerStateToContainerStatus(string(dockerContainer.State)),
				ExitCode:   exitCode(dockerContainer.Status),
				Ports:      MapDockerPortsToContainerPorts(dockerContainer.Ports),
			})
		}
		status.StatusCode = DetermineServiceStatus(status.Containers)
		statuses = append(statuses, status)
	}

	log.Debug("Auxiliary services status retrieved", "bundle", bundleName, "services", len(statuses))
	return statuses, nil
}

func containerName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimPrefix(names[0], "/")
}

// exitCode extracts the code from a status such as "Exited (137) 2 hours ago".
func exitCode(status string) int {
	start := strings.Index(status, "(")
	end := strings.Index(status, ")")
	if !strings.HasPrefix(status, "Exited") && !strings.HasPrefix(status, "Restarting") {
		return 0
	}
	if start < 0 || end <= start {
		return 0
	}
	var code int
	if _, err := fmt.Sscanf(status[start+1:end], "%d", &code); err != nil {
		return 0
	}
	return code
}
