package dockerfile

import (
	"os"
	"path/filepath"
	"testing"

	"bundle-cli/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readDockerfile(t *testing.T, root string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, model.DockerfileName))
	require.NoError(t, err)
	return string(data)
}

func TestEntry(t *testing.T) {
	assert.Equal(t, "ADD .entando/output/widgets/mfe1 /widgets/mfe1", Entry("mfe1"))
}

func TestAddMicroFrontendEntryCreatesDockerfile(t *testing.T) {
	root := t.TempDir()
	repo := NewRepository()

	require.NoError(t, repo.AddMicroFrontendEntry(root, "mfe1"))
	require.NoError(t, repo.AddMicroFrontendEntry(root, "mfe1"))
	require.NoError(t, repo.AddMicroFrontendEntry(root, "mfe2"))

	assert.Equal(t, "FROM scratch\n"+Entry("mfe1")+"\n"+Entry("mfe2")+"\n", readDockerfile(t, root))
}

func TestRemoveMicroFrontendEntry(t *testing.T) {
	root := t.TempDir()
	existing := "FROM entando/base:1.0\nLABEL org.entando=bundle\n" + Entry("mfe1") + "\n" + Entry("mfe2") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, model.DockerfileName), []byte(existing), 0o644))
	repo := NewRepository()

	require.NoError(t, repo.RemoveMicroFrontendEntry(root, "mfe1"))
	assert.Equal(t, "FROM entando/base:1.0\nLABEL org.entando=bundle\n"+Entry("mfe2")+"\n", readDockerfile(t, root))

	require.NoError(t, repo.RemoveMicroFrontendEntry(root, "mfe9"))
	assert.Equal(t, "FROM entando/base:1.0\nLABEL org.entando=bundle\n"+Entry("mfe2")+"\n", readDockerfile(t, root))
}

func TestRemoveMicroFrontendEntryWithoutDockerfile(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, NewRepository().RemoveMicroFrontendEntry(root, "mfe1"))
	assert.NoFileExists(t, filepath.Join(root, model.DockerfileName))
}
