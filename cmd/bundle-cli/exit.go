package main

import (
	"errors"

	"bundle-cli/internal/domain/model"
)

const (
	exitGeneric     = 1
	exitValidation  = 2
	exitNotFound    = 3
	exitConflict    = 4
	exitEnvironment = 5
	exitNetwork     = 6
)

// exitCode maps an error kind to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return exitValidation
	case errors.Is(err, model.ErrNotFound):
		return exitNotFound
	case errors.Is(err, model.ErrConflict), errors.Is(err, model.ErrDuplicateName):
		return exitConflict
	case errors.Is(err, model.ErrEnvironment):
		return exitEnvironment
	case errors.Is(err, model.ErrNetwork):
		return exitNetwork
	default:
		return exitGeneric
	}
}
