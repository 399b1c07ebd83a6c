// Package cqrs implements the Command Query Responsibility Segregation pattern.
package cqrs

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// NameProvider is an interface for both Command and Query types
// that provides a way to get the name of the message.
type NameProvider interface {
	// Name returns the name of the message (command or query).
	Name() string
}

// ActionProvider defines an interface for managing handlers and controlling the bus lifecycle.
type ActionProvider interface {
	// Register registers a handler for a specific message type.
	Register(handler interface{}) error

	// Shutdown initiates a graceful shutdown of the bus.
	// New messages will be rejected, but existing messages will be allowed to complete.
	Shutdown()

	// WaitForCompletion waits for all active messages to complete.
	WaitForCompletion()
}

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// Bus is a generic implementation that can be used by both command and query buses.
type Bus struct {
	handlers       map[string]interface{}
	mutex          sync.RWMutex
	isShuttingDown bool
	activeMessages sync.WaitGroup
	busType        string // "command" or "query"
	numOut         int
}

// NewBus creates a new Bus with the specified type. numOut is the number of
// values the Handle method of every handler returns.
func NewBus(busType string, numOut int) *Bus {
	return &Bus{
		handlers: make(map[string]interface{}),
		busType:  busType,
		numOut:   numOut,
	}
}

// Register registers a handler. The handler must be a pointer with a method
// Handle(ctx context.Context, msg M) where M implements NameProvider.
func (b *Bus) Register(handler interface{}) error {
	handlerType := reflect.TypeOf(handler)
	if handlerType == nil || handlerType.Kind() != reflect.Ptr {
		return fmt.Errorf("handler must be a pointer to a struct, got %T", handler)
	}

	handleMethod, exists := handlerType.MethodByName("Handle")
	if !exists {
		return fmt.Errorf("handler %T does not implement Handle method", handler)
	}

	methodType := handleMethod.Type
	if methodType.NumIn() != 3 { // receiver + context + message
		return fmt.Errorf("Handle method of %T must take a context and the %s", handler, b.busType)
	}
	if methodType.In(1) != contextType {
		return fmt.Errorf("first parameter of %T.Handle must be context.Context", handler)
	}
	if methodType.NumOut() != b.numOut {
		return fmt.Errorf("Handle method of %T must return %d value(s)", handler, b.numOut)
	}

	msgType := methodType.In(2)
	msg, ok := reflect.New(msgType).Elem().Interface().(NameProvider)
	if !ok {
		return fmt.Errorf("parameter type %s does not implement the %s interface", msgType, b.busType)
	}
	messageName := msg.Name()

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, exists := b.handlers[messageName]; exists {
		return fmt.Errorf("handler for %s %s already registered", b.busType, messageName)
	}

	b.handlers[messageName] = handler
	return nil
}

// Shutdown initiates a graceful shutdown of the bus.
func (b *Bus) Shutdown() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.isShuttingDown = true
}

// WaitForCompletion waits for all active messages to complete.
func (b *Bus) WaitForCompletion() {
	b.activeMessages.Wait()
}

// IsShuttingDown returns true if the bus is shutting down.
func (b *Bus) IsShuttingDown() bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.isShuttingDown
}

// call invokes the handler registered for msg and returns its raw results.
func (b *Bus) call(ctx context.Context, msg NameProvider, shuttingDown error) ([]reflect.Value, error) {
	if b.IsShuttingDown() {
		return nil, shuttingDown
	}

	b.mutex.RLock()
	handler, exists := b.handlers[msg.Name()]
	b.mutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no handler registered for %s %s", b.busType, msg.Name())
	}

	b.activeMessages.Add(1)
	defer b.activeMessages.Done()

	if ctx == nil {
		ctx = context.Background()
	}

	handleMethod := reflect.ValueOf(handler).MethodByName("Handle")
	return handleMethod.Call([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(msg)}), nil
}

// watch shuts the bus down when ctx is cancelled.
func (b *Bus) watch(ctx context.Context) {
	if ctx == nil {
		return
	}
	go func() {
		<-ctx.Done()
		b.Shutdown()
	}()
}
