package add_microfrontend

import "bundle-cli/internal/domain/model"

// AddMicroFrontendCommand represents a command to add a micro frontend to the bundle
type AddMicroFrontendCommand struct {
	MicroFrontend model.MicroFrontend
}

// Name returns the name of the command
func (c AddMicroFrontendCommand) Name() string {
	return "AddMicroFrontend"
}
