package get_descriptor

// GetDescriptorQuery represents a query to read the validated bundle descriptor
type GetDescriptorQuery struct{}

// Name returns the name of the query
func (q GetDescriptorQuery) Name() string {
	return "GetDescriptor"
}
