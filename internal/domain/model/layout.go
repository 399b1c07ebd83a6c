package model

import "path/filepath"

const (
	MicroservicesDir  = "microservices"
	MicroFrontendsDir = "microfrontends"
	DockerfileName    = "Dockerfile"
	// OutputDir holds every artifact generated by build and pack.
	OutputDir = ".entando/output"
)

// Layout resolves the well-known paths of a bundle from its root directory.
type Layout struct {
	Root string
}

func NewLayout(root string) Layout {
	return Layout{Root: root}
}

func (l Layout) DescriptorPath() string {
	return filepath.Join(l.Root, DescriptorFileName)
}

func (l Layout) MicroservicesPath() string {
	return filepath.Join(l.Root, MicroservicesDir)
}

func (l Layout) MicroservicePath(name string) string {
	return filepath.Join(l.MicroservicesPath(), name)
}

func (l Layout) MicroFrontendsPath() string {
	return filepath.Join(l.Root, MicroFrontendsDir)
}

func (l Layout) MicroFrontendPath(name string) string {
	return filepath.Join(l.MicroFrontendsPath(), name)
}

// MfePublicPath is the public folder of a micro frontend, where its overlay lives.
func (l Layout) MfePublicPath(mfe MicroFrontend) string {
	folder := mfe.PublicFolder
	if folder == "" {
		folder = DefaultPublicFolder
	}
	return filepath.Join(l.MicroFrontendPath(mfe.Name), folder)
}

func (l Layout) MfeConfigPath(mfe MicroFrontend) string {
	return filepath.Join(l.MfePublicPath(mfe), MfeConfigFileName)
}

func (l Layout) DockerfilePath() string {
	return filepath.Join(l.Root, DockerfileName)
}

// OutputPath joins elem below the build output directory.
func (l Layout) OutputPath(elem ...string) string {
	return filepath.Join(append([]string{l.Root, filepath.FromSlash(OutputDir)}, elem...)...)
}
