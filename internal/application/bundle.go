package application

import (
	"context"
	"fmt"
	"time"

	"bundle-cli/internal/application/command"
	"bundle-cli/internal/application/config"
	"bundle-cli/internal/application/query"
	"bundle-cli/internal/domain/service/auxiliary"
	"bundle-cli/internal/domain/service/claim"
	"bundle-cli/internal/domain/service/component"
	"bundle-cli/pkg/cqrs"
	"bundle-cli/pkg/log"

	"github.com/google/uuid"
)

// Bundle is the entry point of every operation on a bundle. Commands and
// queries run one at a time, each under its own operation id.
type Bundle struct {
	config     *config.Config
	commandBus cqrs.CommandBus
	queryBus   cqrs.QueryBus
}

// NewBundle wires the bundle rooted at config.BundleRoot to the real
// repositories.
func NewBundle(ctx context.Context, config *config.Config) (*Bundle, error) {
	return NewBundleWithRepositories(ctx, config, NewRepositories(config))
}

// NewBundleWithRepositories wires the domain services on top of repos.
func NewBundleWithRepositories(ctx context.Context, config *config.Config, repos Repositories) (*Bundle, error) {
	components := component.NewComponentService(config.GetLayout(), repos.Descriptors, repos.Dockerfile, repos.Outputs)
	claims := claim.NewApiClaimService(repos.Descriptors, repos.MfeConfigs, repos.Catalog, config.GetBaseURL())
	services := auxiliary.NewAuxiliaryService(repos.Descriptors, repos.ServicesStatus)

	commandBus := cqrs.NewCommandBus(ctx)
	if err := command.RegisterCommandHandlers(commandBus, components, claims, services); err != nil {
		return nil, fmt.Errorf("failed to register command handlers: %w", err)
	}

	queryBus := cqrs.NewQueryBus(ctx)
	if err := query.RegisterQueryHandlers(queryBus, repos.Descriptors, claims, services); err != nil {
		return nil, fmt.Errorf("failed to register query handlers: %w", err)
	}

	log.Debug("Bundle initialized", "config", config.String())
	return &Bundle{
		config:     config,
		commandBus: commandBus,
		queryBus:   queryBus,
	}, nil
}

func (b *Bundle) Config() *config.Config {
	return b.config
}

// Dispatch runs a command.
func (b *Bundle) Dispatch(ctx context.Context, cmd cqrs.Command) error {
	operationID := uuid.NewString()
	start := time.Now()
	log.Debug("Dispatching command", "operation_id", operationID, "command", cmd.Name())

	if err := b.commandBus.Dispatch(ctx, cmd); err != nil {
		log.Debug("Command failed", "operation_id", operationID, "command", cmd.Name(), "error", err)
		return err
	}

	log.Debug("Command completed", "operation_id", operationID, "command", cmd.Name(), "duration", time.Since(start))
	return nil
}

// Ask runs a query against b and returns its typed result.
func Ask[R any](ctx context.Context, b *Bundle, q cqrs.Query) (R, error) {
	operationID := uuid.NewString()
	log.Debug("Dispatching query", "operation_id", operationID, "query", q.Name())

	result, err := cqrs.Ask[R](ctx, b.queryBus, q)
	if err != nil {
		log.Debug("Query failed", "operation_id", operationID, "query", q.Name(), "error", err)
		return result, err
	}
	return result, nil
}
