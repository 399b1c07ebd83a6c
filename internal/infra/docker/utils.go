package docker

import (
	"strings"

	"bundle-cli/internal/domain/model"

	"github.com/docker/docker/api/types/container"
)

// MapDockerStateToContainerStatus maps Docker container state to ContainerStatusCode
func MapDockerStateToContainerStatus(state string) model.ContainerStatusCode {
	switch strings.ToLower(state) {
	case "running":
		return model.ContainerStatusActive
	case "exited", "stopped", "created":
		return model.ContainerStatusStopped
	case "restarting":
		return model.ContainerStatusRestarting
	case "paused":
		return model.ContainerStatusIdle
	case "dead", "oomkilled":
		return model.ContainerStatusProblematic
	default:
		return model.ContainerStatusUnknown
	}
}

// MapDockerPortsToContainerPorts keeps the ports published on the host.
func MapDockerPortsToContainerPorts(dockerPorts []container.Port) []model.ContainerPort {
	var ports []model.ContainerPort
	for _, dockerPort := range dockerPorts {
		if dockerPort.PublicPort > 0 {
			ports = append(ports, model.ContainerPort{
				Port:     int(dockerPort.PublicPort),
				Protocol: dockerPort.Type,
			})
		}
	}
	return ports
}

// DetermineServiceStatus derives the state of a service from its containers.
// A service without containers is stopped.
func DetermineServiceStatus(containers []model.Container) model.ContainerStatusCode {
	if len(containers) == 0 {
		return model.ContainerStatusStopped
	}

	var active, idle, stopped, restarting, problematic int
	for _, c := range containers {
		switch c.StatusCode {
		case model.ContainerStatusActive:
			active++
		case model.ContainerStatusIdle:
			idle++
		case model.ContainerStatusStopped:
			stopped++
		case model.ContainerStatusRestarting:
			if c.ExitCode != 0 {
				problematic++
			} else {
				restarting++
			}
		default:
			problematic++
		}
	}

	switch {
	case problematic > 0:
		return model.ContainerStatusProblematic
	case restarting > 0:
		return model.ContainerStatusRestarting
	case active > 0 && stopped == 0 && idle == 0:
		return model.ContainerStatusActive
	case stopped > 0 && active == 0 && idle == 0:
		return model.ContainerStatusStopped
	case idle > 0 || (active > 0 && stopped > 0):
		return model.ContainerStatusIdle
	default:
		return model.ContainerStatusUnknown
	}
}
