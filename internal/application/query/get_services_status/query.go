package get_services_status

// GetServicesStatusQuery represents a query to retrieve the state of the
// auxiliary services enabled in the bundle
type GetServicesStatusQuery struct{}

// Name returns the name of the query
func (q GetServicesStatusQuery) Name() string {
	return "GetServicesStatus"
}
