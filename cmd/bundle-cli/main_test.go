package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"bundle-cli/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: model.NewValidationError("bad"), want: exitValidation},
		{err: model.NewNotFoundError("missing"), want: exitNotFound},
		{err: model.NewConflictError("taken"), want: exitConflict},
		{err: &model.DuplicateNamesError{Names: []string{"a"}}, want: exitConflict},
		{err: model.NewEnvironmentError("no docker"), want: exitEnvironment},
		{err: fmt.Errorf("wrapped: %w", model.WrapNetworkError(errors.New("refused"), "catalog")), want: exitNetwork},
		{err: errors.New("boom"), want: exitGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func run(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--bundle-root", root, "--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI(t *testing.T) {
	root := t.TempDir()
	manifest := `{"name": "my-bundle", "version": "0.0.1", "type": "bundle", "microservices": [], "microfrontends": []}`
	require.NoError(t, os.WriteFile(filepath.Join(root, model.DescriptorFileName), []byte(manifest), 0o644))

	out, err := run(t, root, "ms", "add", "ms1", "--stack", "node")
	require.NoError(t, err)
	assert.Contains(t, out, "Microservice ms1 added")

	_, err = run(t, root, "mfe", "add", "mfe1")
	require.NoError(t, err)

	_, err = run(t, root, "api", "add-int", "mfe1", "ms1-api", "--service", "ms1", "--service-url", "http://localhost:8080")
	require.NoError(t, err)

	out, err = run(t, root, "api", "list", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"url": "http://localhost:8080"`)

	out, err = run(t, root, "info", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: my-bundle")

	out, err = run(t, root, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = run(t, root, "ms", "add", "mfe1")
	assert.Equal(t, exitConflict, exitCode(err))

	_, err = run(t, root, "api", "rm", "mfe1", "nope")
	assert.Equal(t, exitNotFound, exitCode(err))
}
