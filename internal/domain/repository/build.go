package repository

// DockerfileRepository keeps the bundle Dockerfile listing exactly one entry
// per micro frontend.
type DockerfileRepository interface {
	AddMicroFrontendEntry(bundleRoot, name string) error
	RemoveMicroFrontendEntry(bundleRoot, name string) error
}

// OutputRepository drops artifacts generated for a component by earlier builds.
type OutputRepository interface {
	RemoveMicroserviceOutput(name string) error
}
