package cqrs

import (
	"context"
	"errors"
)

// ErrQueryBusShuttingDown is returned when a query is dispatched to a bus that is shutting down.
var ErrQueryBusShuttingDown = errors.New("query bus is shutting down")

// DefaultQueryBus is a simple implementation of the QueryBus interface.
type DefaultQueryBus struct {
	*Bus
}

// NewQueryBus creates a new DefaultQueryBus. The bus stops accepting queries
// once ctx is cancelled.
func NewQueryBus(ctx context.Context) *DefaultQueryBus {
	b := &DefaultQueryBus{Bus: NewBus("query", 2)}
	b.watch(ctx)
	return b
}

// Dispatch sends a query to its appropriate handler and returns the result.
func (b *DefaultQueryBus) Dispatch(ctx context.Context, query Query) (interface{}, error) {
	results, err := b.call(ctx, query, ErrQueryBusShuttingDown)
	if err != nil {
		return nil, err
	}

	if !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface(), nil
}
