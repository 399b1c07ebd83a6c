package cqrs_test

import (
	"context"
	"fmt"

	"bundle-cli/pkg/cqrs"
)

// Example command
type AddComponentCommand struct {
	Component string
	Kind      string
}

func (c AddComponentCommand) Name() string {
	return "AddComponent"
}

// Example command handler
type AddComponentHandler struct{}

func (h *AddComponentHandler) Handle(ctx context.Context, cmd AddComponentCommand) error {
	fmt.Printf("Adding %s %s\n", cmd.Kind, cmd.Component)
	return nil
}

// Example query
type CountComponentsQuery struct {
	Kind string
}

func (q CountComponentsQuery) Name() string {
	return "CountComponents"
}

// Example query handler
type CountComponentsHandler struct{}

func (h *CountComponentsHandler) Handle(ctx context.Context, query CountComponentsQuery) (int, error) {
	return 3, nil
}

func Example_commandBus() {
	commandBus := cqrs.NewCommandBus(context.Background())

	if err := commandBus.Register(&AddComponentHandler{}); err != nil {
		fmt.Printf("Error registering handler: %v\n", err)
		return
	}

	err := commandBus.Dispatch(context.Background(), AddComponentCommand{Component: "ms1", Kind: "microservice"})
	if err != nil {
		fmt.Printf("Error dispatching command: %v\n", err)
		return
	}

	// Output:
	// Adding microservice ms1
}

func Example_queryBus() {
	queryBus := cqrs.NewQueryBus(context.Background())

	if err := queryBus.Register(&CountComponentsHandler{}); err != nil {
		fmt.Printf("Error registering handler: %v\n", err)
		return
	}

	count, err := cqrs.Ask[int](context.Background(), queryBus, CountComponentsQuery{Kind: "microservice"})
	if err != nil {
		fmt.Printf("Error dispatching query: %v\n", err)
		return
	}

	fmt.Printf("Found %d components\n", count)

	// Output:
	// Found 3 components
}
