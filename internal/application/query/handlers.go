package query

import (
	"fmt"

	"bundle-cli/internal/application/query/get_descriptor"
	"bundle-cli/internal/application/query/get_services_status"
	"bundle-cli/internal/application/query/list_api_claims"
	"bundle-cli/internal/domain/repository"
	"bundle-cli/internal/domain/service/auxiliary"
	"bundle-cli/internal/domain/service/claim"
	"bundle-cli/pkg/cqrs"
)

func RegisterQueryHandlers(
	b cqrs.QueryBus,
	descriptors repository.DescriptorRepository,
	claims claim.ApiClaimServiceInterface,
	services auxiliary.AuxiliaryServiceInterface,
) error {
	if err := b.Register(get_descriptor.NewGetDescriptorQueryHandler(descriptors)); err != nil {
		return fmt.Errorf("failed to register get descriptor query handler: %w", err)
	}

	if err := b.Register(list_api_claims.NewListApiClaimsQueryHandler(claims)); err != nil {
		return fmt.Errorf("failed to register list API claims query handler: %w", err)
	}

	if err := b.Register(get_services_status.NewGetServicesStatusQueryHandler(services)); err != nil {
		return fmt.Errorf("failed to register get services status query handler: %w", err)
	}

	return nil
}
