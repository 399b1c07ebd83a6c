package remove_microfrontend

// RemoveMicroFrontendCommand represents a command to remove a micro frontend from the bundle
type RemoveMicroFrontendCommand struct {
	MicroFrontendName string
}

// Name returns the name of the command
func (c RemoveMicroFrontendCommand) Name() string {
	return "RemoveMicroFrontend"
}
