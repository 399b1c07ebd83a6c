package remove_microservice

// RemoveMicroserviceCommand represents a command to remove a microservice from the bundle
type RemoveMicroserviceCommand struct {
	MicroserviceName string
}

// Name returns the name of the command
func (c RemoveMicroserviceCommand) Name() string {
	return "RemoveMicroservice"
}
