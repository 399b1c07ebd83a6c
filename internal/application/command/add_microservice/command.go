package add_microservice

import "bundle-cli/internal/domain/model"

// AddMicroserviceCommand represents a command to add a microservice to the bundle
type AddMicroserviceCommand struct {
	Microservice model.Microservice
}

// Name returns the name of the command
func (c AddMicroserviceCommand) Name() string {
	return "AddMicroservice"
}
