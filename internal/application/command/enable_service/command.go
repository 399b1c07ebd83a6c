package enable_service

// EnableServiceCommand represents a command to enable an auxiliary service
type EnableServiceCommand struct {
	ServiceName string
}

// Name returns the name of the command
func (c EnableServiceCommand) Name() string {
	return "EnableService"
}
