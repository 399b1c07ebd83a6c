package docker

import (
	"context"
	"errors"
	"testing"

	"bundle-cli/internal/domain/model"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	containers map[string][]container.Summary
	err        error
	filters    []string
}

func (l *fakeLister) ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
	if l.err != nil {
		return nil, l.err
	}
	labels := options.Filters.Get("label")
	l.filters = append(l.filters, labels...)
	for _, label := range labels {
		if containers, ok := l.containers[label]; ok {
			return containers, nil
		}
	}
	return nil, nil
}

func TestGetServicesStatus(t *testing.T) {
	lister := &fakeLister{containers: map[string][]container.Summary{
		composeServiceLabel + "=postgresql": {{
			ID:     "abc",
			Names:  []string{"/my-bundle-svc-postgresql-1"},
			State:  "running",
			Status: "Up 2 minutes",
			Ports:  []container.Port{{PrivatePort: 5432, PublicPort: 5433, Type: "tcp"}, {PrivatePort: 9000, Type: "tcp"}},
		}},
		composeServiceLabel + "=keycloak": {{
			ID:     "def",
			Names:  []string{"/my-bundle-svc-keycloak-1"},
			State:  "exited",
			Status: "Exited (137) 5 minutes ago",
		}},
	}}
	repo := NewServicesStatusRepositoryWithLister(lister)

	statuses, err := repo.GetServicesStatus(context.Background(), "my-bundle", []string{"postgresql", "keycloak", "mysql"})
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, "postgresql", statuses[0].Name)
	assert.Equal(t, model.ContainerStatusActive, statuses[0].StatusCode)
	require.Len(t, statuses[0].Containers, 1)
	assert.Equal(t, "my-bundle-svc-postgresql-1", statuses[0].Containers[0].Name)
	assert.Equal(t, []model.ContainerPort{{Port: 5433, Protocol: "tcp"}}, statuses[0].Containers[0].Ports)

	assert.Equal(t, model.ContainerStatusStopped, statuses[1].StatusCode)
	assert.Equal(t, 137, statuses[1].Containers[0].ExitCode)

	assert.Equal(t, model.ContainerStatusStopped, statuses[2].StatusCode)
	assert.Empty(t, statuses[2].Containers)

	assert.Contains(t, lister.filters, composeProjectLabel+"=my-bundle-svc")
}

func TestGetServicesStatusDockerUnavailable(t *testing.T) {
	repo := NewServicesStatusRepositoryWithLister(&fakeLister{err: errors.New("Cannot connect to the Docker daemon")})

	_, err := repo.GetServicesStatus(context.Background(), "my-bundle", []string{"postgresql"})
	assert.ErrorIs(t, err, model.ErrEnvironment)
}

type closingLister struct {
	fakeLister
	closed int
}

func (l *closingLister) Close() error {
	l.closed++
	return nil
}

func TestGetServicesStatusClosesClient(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "After a successful query"},
		{name: "After a failed query", err: errors.New("Cannot connect to the Docker daemon"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &closingLister{fakeLister: fakeLister{err: tt.err}}
			repo := &ServicesStatusRepository{newLister: func() (ContainerLister, error) { return lister, nil }}

			_, err := repo.GetServicesStatus(context.Background(), "my-bundle", []string{"postgresql", "keycloak"})
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrEnvironment)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, lister.closed)
		})
	}
}

func TestGetServicesStatusKeepsCallerLister(t *testing.T) {
	lister := &closingLister{}
	repo := NewServicesStatusRepositoryWithLister(lister)

	_, err := repo.GetServicesStatus(context.Background(), "my-bundle", []string{"postgresql"})
	require.NoError(t, err)
	assert.Zero(t, lister.closed)
}

func TestDetermineServiceStatus(t *testing.T) {
	tests := []struct {
		name       string
		containers []model.Container
		want       model.ContainerStatusCode
	}{
		{name: "No containers", want: model.ContainerStatusStopped},
		{name: "All running", containers: []model.Container{{StatusCode: model.ContainerStatusActive}, {StatusCode: model.ContainerStatusActive}}, want: model.ContainerStatusActive},
		{name: "Running and stopped", containers: []model.Container{{StatusCode: model.ContainerStatusActive}, {StatusCode: model.ContainerStatusStopped}}, want: model.ContainerStatusIdle},
		{name: "Crash loop", containers: []model.Container{{StatusCode: model.ContainerStatusRestarting, ExitCode: 1}}, want: model.ContainerStatusProblematic},
		{name: "Restarting", containers: []model.Container{{StatusCode: model.ContainerStatusRestarting}}, want: model.ContainerStatusRestarting},
		{name: "Dead", containers: []model.Container{{StatusCode: model.ContainerStatusActive}, {StatusCode: model.ContainerStatusProblematic}}, want: model.ContainerStatusProblematic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineServiceStatus(tt.containers))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 137, exitCode("Exited (137) 2 hours ago"))
	assert.Equal(t, 0, exitCode("Up 3 minutes"))
	assert.Equal(t, 1, exitCode("Restarting (1) 4 seconds ago"))
	assert.Equal(t, 0, exitCode("Exited"))
}
