package disable_service

// DisableServiceCommand represents a command to disable an auxiliary service
type DisableServiceCommand struct {
	ServiceName string
}

// Name returns the name of the command
func (c DisableServiceCommand) Name() string {
	return "DisableService"
}
