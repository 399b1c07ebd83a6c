package cqrs

import (
	"context"
	"errors"
)

// ErrCommandBusShuttingDown is returned when a command is dispatched to a bus that is shutting down.
var ErrCommandBusShuttingDown = errors.New("command bus is shutting down")

// DefaultCommandBus is a simple implementation of the CommandBus interface.
type DefaultCommandBus struct {
	*Bus
}

// NewCommandBus creates a new DefaultCommandBus. The bus stops accepting
// commands once ctx is cancelled.
func NewCommandBus(ctx context.Context) *DefaultCommandBus {
	b := &DefaultCommandBus{Bus: NewBus("command", 1)}
	b.watch(ctx)
	return b
}

// Dispatch sends a command to its appropriate handler.
func (b *DefaultCommandBus) Dispatch(ctx context.Context, cmd Command) error {
	results, err := b.call(ctx, cmd, ErrCommandBusShuttingDown)
	if err != nil {
		return err
	}

	if !results[0].IsNil() {
		return results[0].Interface().(error)
	}
	return nil
}
