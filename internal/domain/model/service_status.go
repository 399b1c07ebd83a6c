package model

type ContainerStatusCode int8

const (
	ContainerStatusUnknown     ContainerStatusCode = 0
	ContainerStatusActive      ContainerStatusCode = 1
	ContainerStatusIdle        ContainerStatusCode = 2
	ContainerStatusRestarting  ContainerStatusCode = 3
	ContainerStatusProblematic ContainerStatusCode = 4
	ContainerStatusStopped     ContainerStatusCode = 5
)

func (c ContainerStatusCode) String() string {
	switch c {
	case ContainerStatusActive:
		return "active"
	case ContainerStatusIdle:
		return "idle"
	case ContainerStatusRestarting:
		return "restarting"
	case ContainerStatusProblematic:
		return "problematic"
	case ContainerStatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ServiceStatus is the state of an auxiliary service enabled in the bundle.
// StatusCode is Stopped when no container exists for the service.
type ServiceStatus struct {
	Name       string              `json:"name"`
	StatusCode ContainerStatusCode `json:"status_code"`
	Containers []Container         `json:"containers"`
}

type Container struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	StatusCode ContainerStatusCode `json:"status_code"`
	ExitCode   int                 `json:"exit_code"`
	Ports      []ContainerPort     `json:"ports,omitempty"`
}

type ContainerPort struct {
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
}
