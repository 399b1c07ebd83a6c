package command

import (
	"fmt"

	"bundle-cli/internal/application/command/add_api_claim"
	"bundle-cli/internal/application/command/add_microfrontend"
	"bundle-cli/internal/application/command/add_microservice"
	"bundle-cli/internal/application/command/disable_service"
	"bundle-cli/internal/application/command/enable_service"
	"bundle-cli/internal/application/command/remove_api_claim"
	"bundle-cli/internal/application/command/remove_microfrontend"
	"bundle-cli/internal/application/command/remove_microservice"
	"bundle-cli/internal/domain/service/auxiliary"
	"bundle-cli/internal/domain/service/claim"
	"bundle-cli/internal/domain/service/component"
	"bundle-cli/pkg/cqrs"
)

func RegisterCommandHandlers(
	b cqrs.CommandBus,
	components component.ComponentServiceInterface,
	claims claim.ApiClaimServiceInterface,
	services auxiliary.AuxiliaryServiceInterface,
) error {
	handlers := []interface{}{
		add_microservice.NewAddMicroserviceHandler(components),
		remove_microservice.NewRemoveMicroserviceHandler(components),
		add_microfrontend.NewAddMicroFrontendHandler(components),
		remove_microfrontend.NewRemoveMicroFrontendHandler(components),
		add_api_claim.NewAddApiClaimHandler(claims),
		remove_api_claim.NewRemoveApiClaimHandler(claims),
		enable_service.NewEnableServiceHandler(services),
		disable_service.NewDisableServiceHandler(services),
	}

	for _, handler := range handlers {
		if err := b.Register(handler); err != nil {
			return fmt.Errorf("failed to register command handler %T: %w", handler, err)
		}
	}
	return nil
}
