package repository

import "bundle-cli/internal/domain/model"

// DescriptorRepository owns the bundle manifest. Every mutation is a full
// Read, transform, Write cycle; there is no locking.
type DescriptorRepository interface {
	// Exists reports whether the manifest file is present.
	Exists() bool

	// Read parses and validates the manifest. It fails when the manifest breaks
	// a structural rule or uses a component name twice.
	Read() (*model.BundleDescriptor, error)

	// Write overwrites the manifest with descriptor.
	Write(descriptor *model.BundleDescriptor) error
}
