package claim

import (
	"context"
	"errors"
	"os"
	"testing"

	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/infra/descriptor"
	"bundle-cli/internal/infra/mfeconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	ingressPath string
	err         error

	bundleID    string
	serviceName string
	calls       int
}

func (c *fakeCatalog) GetBundleMicroservice(ctx context.Context, bundleID, serviceName string) (model.CatalogMicroservice, error) {
	c.calls++
	c.bundleID = bundleID
	c.serviceName = serviceName
	if c.err != nil {
		return model.CatalogMicroservice{}, c.err
	}
	return model.CatalogMicroservice{IngressPath: c.ingressPath}, nil
}

type fixture struct {
	layout      model.Layout
	descriptors *descriptor.Store
	mfeConfigs  *mfeconfig.Store
	catalog     *fakeCatalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	layout := model.NewLayout(t.TempDir())
	descriptors := descriptor.NewStore(layout)
	require.NoError(t, descriptors.Write(&model.BundleDescriptor{
		Name:          "my-bundle",
		Version:       "0.0.1",
		Type:          model.BundleTypeBundle,
		Microservices: []model.Microservice{{Name: "ms1", Stack: model.MicroserviceStackSpringBoot, HealthCheckPath: model.DefaultHealthCheckPath}},
		MicroFrontends: []model.MicroFrontend{{
			Name:         "mfe1",
			Stack:        model.MicroFrontendStackReact,
			Group:        model.DefaultMicroFrontendGroup,
			PublicFolder: model.DefaultPublicFolder,
			ApiClaims:    []model.ApiClaim{},
			Variant:      model.Widget{Titles: map[string]string{"en": "mfe1"}},
		}},
	}))

	return &fixture{
		layout:      layout,
		descriptors: descriptors,
		mfeConfigs:  mfeconfig.NewStore(layout),
		catalog:     &fakeCatalog{},
	}
}

func (f *fixture) service(baseURL string) *ApiClaimService {
	return NewApiClaimService(f.descriptors, f.mfeConfigs, f.catalog, baseURL)
}

func (f *fixture) mfe(t *testing.T) model.MicroFrontend {
	t.Helper()
	d, err := f.descriptors.Read()
	require.NoError(t, err)
	return d.MicroFrontends[0]
}

func (f *fixture) config(t *testing.T) *model.MfeConfig {
	t.Helper()
	config, err := f.mfeConfigs.Get(f.mfe(t))
	require.NoError(t, err)
	return config
}

func (f *fixture) snapshot(t *testing.T) (string, string) {
	t.Helper()
	manifest, err := os.ReadFile(f.layout.DescriptorPath())
	require.NoError(t, err)
	overlay, err := os.ReadFile(f.layout.MfeConfigPath(f.mfe(t)))
	if errors.Is(err, os.ErrNotExist) {
		return string(manifest), ""
	}
	require.NoError(t, err)
	return string(manifest), string(overlay)
}

func TestAddInternalClaim(t *testing.T) {
	f := newFixture(t)

	url, err := f.service("").AddInternalClaim("mfe1", model.NewInternalClaim("ms1-api", "ms1"), "http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", url)

	assert.Equal(t, []model.ApiClaim{{Name: "ms1-api", Type: model.ApiClaimInternal, ServiceName: "ms1"}}, f.mfe(t).ApiClaims)
	assert.Equal(t, map[string]model.ApiURL{"ms1-api": {URL: "http://localhost:8080"}}, f.config(t).SystemParams.API)
}

func TestAddInternalClaimTwice(t *testing.T) {
	f := newFixture(t)
	service := f.service("")
	claim := model.NewInternalClaim("ms1-api", "ms1")

	_, err := service.AddInternalClaim("mfe1", claim, "http://localhost:8080")
	require.NoError(t, err)
	manifest, overlay := f.snapshot(t)

	_, err = service.AddInternalClaim("mfe1", claim, "http://localhost:9090")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)
	assert.EqualError(t, err, "API claim ms1-api already exists")

	afterManifest, afterOverlay := f.snapshot(t)
	assert.Equal(t, manifest, afterManifest)
	assert.Equal(t, overlay, afterOverlay)
}

func TestAddInternalClaimReferences(t *testing.T) {
	tests := []struct {
		name       string
		mfeName    string
		claim      model.ApiClaim
		serviceURL string
		wantErr    error
	}{
		{
			name:       "Unknown microservice",
			mfeName:    "mfe1",
			claim:      model.NewInternalClaim("c", "ms9"),
			serviceURL: "http://localhost:8080",
			wantErr:    model.ErrNotFound,
		},
		{
			name:       "Unknown micro frontend",
			mfeName:    "mfe9",
			claim:      model.NewInternalClaim("c", "ms1"),
			serviceURL: "http://localhost:8080",
			wantErr:    model.ErrNotFound,
		},
		{
			name:       "Invalid claim name",
			mfeName:    "mfe1",
			claim:      model.NewInternalClaim("c/1", "ms1"),
			serviceURL: "http://localhost:8080",
			wantErr:    model.ErrValidation,
		},
		{
			name:       "Invalid service URL",
			mfeName:    "mfe1",
			claim:      model.NewInternalClaim("c", "ms1"),
			serviceURL: "localhost",
			wantErr:    model.ErrValidation,
		},
		{
			name:       "External claim",
			mfeName:    "mfe1",
			claim:      model.NewExternalClaim("c", "ms1", "docker://x"),
			serviceURL: "http://localhost:8080",
			wantErr:    model.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			manifest, _ := f.snapshot(t)

			_, err := f.service("").AddInternalClaim(tt.mfeName, tt.claim, tt.serviceURL)
			assert.ErrorIs(t, err, tt.wantErr)

			after, overlay := f.snapshot(t)
			assert.Equal(t, manifest, after)
			assert.Empty(t, overlay)
		})
	}
}

func TestAddExternalClaim(t *testing.T) {
	f := newFixture(t)
	f.catalog.ingressPath = "/ms1"
	claim := model.NewExternalClaim("ext-api", "ext-ms", "docker://registry/org/other")

	url, err := f.service("http://mock").AddExternalClaim(context.Background(), "mfe1", claim)
	require.NoError(t, err)
	assert.Equal(t, "http://mock/ms1", url)

	assert.Equal(t, model.BundleID("docker://registry/org/other"), f.catalog.bundleID)
	assert.Equal(t, "ext-ms", f.catalog.serviceName)
	assert.Equal(t, []model.ApiClaim{claim}, f.mfe(t).ApiClaims)
	assert.Equal(t, map[string]model.ApiURL{"ext-api": {URL: "http://mock/ms1"}}, f.config(t).SystemParams.API)
}

func TestAddExternalClaimWithoutBaseURL(t *testing.T) {
	f := newFixture(t)

	_, err := f.service("").AddExternalClaim(context.Background(), "mfe1", model.NewExternalClaim("ext-api", "ext-ms", "docker://x"))
	assert.ErrorIs(t, err, model.ErrEnvironment)
	assert.Zero(t, f.catalog.calls)
	assert.Empty(t, f.mfe(t).ApiClaims)
}

func TestAddExternalClaimCatalogFailure(t *testing.T) {
	f := newFixture(t)
	f.catalog.err = model.NewNotFoundError("microservice ext-ms not found in bundle 1234abcd")
	manifest, _ := f.snapshot(t)

	_, err := f.service("http://mock").AddExternalClaim(context.Background(), "mfe1", model.NewExternalClaim("ext-api", "ext-ms", "docker://x"))
	assert.ErrorIs(t, err, model.ErrNotFound)

	after, overlay := f.snapshot(t)
	assert.Equal(t, manifest, after)
	assert.Empty(t, overlay)
}

func TestAddExternalClaimChecksBeforeCatalog(t *testing.T) {
	f := newFixture(t)

	_, err := f.service("http://mock").AddExternalClaim(context.Background(), "mfe9", model.NewExternalClaim("ext-api", "ext-ms", "docker://x"))
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = f.service("http://mock").AddExternalClaim(context.Background(), "mfe1", model.NewExternalClaim("ext-api", "ext-ms", " "))
	assert.ErrorIs(t, err, model.ErrValidation)

	assert.Zero(t, f.catalog.calls)
}

func TestAddClaimKeepsOtherOverlayEntries(t *testing.T) {
	f := newFixture(t)
	mfe := f.mfe(t)
	require.NoError(t, f.mfeConfigs.Write(mfe, &model.MfeConfig{Params: map[string]any{"theme": "dark"}}))

	_, err := f.service("").AddInternalClaim("mfe1", model.NewInternalClaim("ms1-api", "ms1"), "http://localhost:8080")
	require.NoError(t, err)

	config := f.config(t)
	assert.Equal(t, "dark", config.Params["theme"])
	url, ok := config.ApiURL("ms1-api")
	assert.True(t, ok)
	assert.Equal(t, "http://localhost:8080", url)
}

func TestAddClaimBrokenOverlay(t *testing.T) {
	f := newFixture(t)
	mfe := f.mfe(t)
	require.NoError(t, os.MkdirAll(f.layout.MfePublicPath(mfe), 0o755))
	require.NoError(t, os.WriteFile(f.layout.MfeConfigPath(mfe), []byte("{"), 0o644))
	manifest, _ := f.snapshot(t)

	_, err := f.service("").AddInternalClaim("mfe1", model.NewInternalClaim("ms1-api", "ms1"), "http://localhost:8080")
	assert.ErrorIs(t, err, model.ErrValidation)

	after, _ := f.snapshot(t)
	assert.Equal(t, manifest, after)
}

func TestRemoveClaim(t *testing.T) {
	f := newFixture(t)
	service := f.service("")
	_, err := service.AddInternalClaim("mfe1", model.NewInternalClaim("ms1-api", "ms1"), "http://localhost:8080")
	require.NoError(t, err)
	_, err = service.AddInternalClaim("mfe1", model.NewInternalClaim("ms1-admin", "ms1"), "http://localhost:8081")
	require.NoError(t, err)

	require.NoError(t, service.RemoveClaim("mfe1", "ms1-api"))

	assert.Equal(t, []model.ApiClaim{model.NewInternalClaim("ms1-admin", "ms1")}, f.mfe(t).ApiClaims)
	assert.Equal(t, map[string]model.ApiURL{"ms1-admin": {URL: "http://localhost:8081"}}, f.config(t).SystemParams.API)

	manifest, overlay := f.snapshot(t)
	assert.ErrorIs(t, service.RemoveClaim("mfe1", "ms1-api"), model.ErrNotFound)
	assert.ErrorIs(t, service.RemoveClaim("mfe9", "ms1-admin"), model.ErrNotFound)

	afterManifest, afterOverlay := f.snapshot(t)
	assert.Equal(t, manifest, afterManifest)
	assert.Equal(t, overlay, afterOverlay)
}

func TestRemoveClaimWithoutOverlay(t *testing.T) {
	f := newFixture(t)
	d, err := f.descriptors.Read()
	require.NoError(t, err)
	d.MicroFrontends[0].ApiClaims = []model.ApiClaim{model.NewInternalClaim("ms1-api", "ms1")}
	require.NoError(t, f.descriptors.Write(d))

	require.NoError(t, f.service("").RemoveClaim("mfe1", "ms1-api"))
	assert.Empty(t, f.mfe(t).ApiClaims)
	assert.False(t, f.mfeConfigs.Exists(f.mfe(t)))
}

func TestListClaims(t *testing.T) {
	f := newFixture(t)
	f.catalog.ingressPath = "ext"
	service := f.service("http://mock/")
	_, err := service.AddInternalClaim("mfe1", model.NewInternalClaim("ms1-api", "ms1"), "http://localhost:8080")
	require.NoError(t, err)
	_, err = service.AddExternalClaim(context.Background(), "mfe1", model.NewExternalClaim("ext-api", "ext-ms", "docker://x"))
	require.NoError(t, err)

	claims, err := service.ListClaims("")
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, "ms1-api", claims[0].Claim.Name)
	assert.Equal(t, "http://localhost:8080", claims[0].URL)
	assert.Equal(t, "ext-api", claims[1].Claim.Name)
	assert.Equal(t, "http://mock/ext", claims[1].URL)

	claims, err = service.ListClaims("mfe1")
	require.NoError(t, err)
	assert.Len(t, claims, 2)

	_, err = service.ListClaims("mfe9")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "http://mock/ms1", JoinURL("http://mock", "/ms1"))
	assert.Equal(t, "http://mock/ms1", JoinURL("http://mock/", "ms1"))
	assert.Equal(t, "http://mock", JoinURL("http://mock/", ""))
}
