package model

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrDuplicateName = errors.New("duplicate name")
	ErrEnvironment   = errors.New("environment error")
	ErrNetwork       = errors.New("network error")
	ErrIO            = errors.New("io error")
)

// Error is a classified error whose message can be shown to the user as is.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

func NewValidationError(format string, args ...any) error {
	return newError(ErrValidation, nil, format, args...)
}

func NewNotFoundError(format string, args ...any) error {
	return newError(ErrNotFound, nil, format, args...)
}

func NewConflictError(format string, args ...any) error {
	return newError(ErrConflict, nil, format, args...)
}

func NewEnvironmentError(format string, args ...any) error {
	return newError(ErrEnvironment, nil, format, args...)
}

// WrapValidationError classifies cause as a validation failure.
func WrapValidationError(cause error, format string, args ...any) error {
	return newError(ErrValidation, cause, format, args...)
}

// WrapNotFoundError classifies cause as a missing resource.
func WrapNotFoundError(cause error, format string, args ...any) error {
	return newError(ErrNotFound, cause, format, args...)
}

// WrapEnvironmentError classifies cause as a missing or broken local setup.
func WrapEnvironmentError(cause error, format string, args ...any) error {
	return newError(ErrEnvironment, cause, format, args...)
}

// WrapNetworkError classifies cause as a remote access failure.
func WrapNetworkError(cause error, format string, args ...any) error {
	return newError(ErrNetwork, cause, format, args...)
}

// WrapIOError classifies cause as a filesystem access failure.
func WrapIOError(cause error, format string, args ...any) error {
	return newError(ErrIO, cause, format, args...)
}

// DuplicateNamesError lists every component name used more than once in a
// bundle descriptor.
type DuplicateNamesError struct {
	Names []string
}

func (e *DuplicateNamesError) Error() string {
	return fmt.Sprintf("bundle descriptor contains duplicate component names: %s", strings.Join(e.Names, ", "))
}

func (e *DuplicateNamesError) Is(target error) bool {
	return target == ErrDuplicateName
}
