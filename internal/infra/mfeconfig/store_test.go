package mfeconfig

import (
	"os"
	"testing"

	"bundle-cli/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	layout := model.NewLayout(t.TempDir())
	store := NewStore(layout)
	mfe := model.MicroFrontend{Name: "mfe1", PublicFolder: "static"}

	assert.False(t, store.Exists(mfe))
	_, err := store.Get(mfe)
	assert.ErrorIs(t, err, model.ErrNotFound)

	config := &model.MfeConfig{}
	config.SetApiURL("ms1-api", "http://localhost:8080")
	require.NoError(t, store.Write(mfe, config))

	assert.FileExists(t, layout.MfeConfigPath(mfe))
	assert.Contains(t, layout.MfeConfigPath(mfe), "static")

	got, err := store.Get(mfe)
	require.NoError(t, err)
	assert.Equal(t, config, got)
}

func TestStoreGetInvalidJSON(t *testing.T) {
	layout := model.NewLayout(t.TempDir())
	mfe := model.MicroFrontend{Name: "mfe1"}
	require.NoError(t, os.MkdirAll(layout.MfePublicPath(mfe), 0o755))
	require.NoError(t, os.WriteFile(layout.MfeConfigPath(mfe), []byte("not json"), 0o644))

	_, err := NewStore(layout).Get(mfe)
	assert.ErrorIs(t, err, model.ErrValidation)
}
