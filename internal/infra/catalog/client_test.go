package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bundle-cli/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBundleMicroservice(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ingressPath": "/other/ms1", "name": "ms1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/digital-exchange/", "secret", time.Second)
	ms, err := client.GetBundleMicroservice(context.Background(), "1234abcd", "ms1")
	require.NoError(t, err)

	assert.Equal(t, "/other/ms1", ms.IngressPath)
	assert.Equal(t, "/digital-exchange/bundles/1234abcd/plugins/ms1", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestGetBundleMicroserviceWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"ingressPath": "/ms1"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "", 0).GetBundleMicroservice(context.Background(), "1234abcd", "ms1")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestGetBundleMicroserviceErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "Not found", status: http.StatusNotFound, body: `{"message":"no such plugin"}`, wantErr: model.ErrNotFound},
		{name: "Server error", status: http.StatusInternalServerError, body: "boom", wantErr: model.ErrNetwork},
		{name: "Unauthorized", status: http.StatusUnauthorized, wantErr: model.ErrNetwork},
		{name: "Invalid body", status: http.StatusOK, body: "<html>", wantErr: model.ErrNetwork},
		{name: "Missing ingress path", status: http.StatusOK, body: `{"name":"ms1"}`, wantErr: model.ErrNetwork},
		{name: "Oversized body", status: http.StatusOK, body: `{"ingressPath":"/ms1","pad":"` + strings.Repeat("x", MaxResponseSize) + `"}`, wantErr: model.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL, "", time.Second).GetBundleMicroservice(context.Background(), "1234abcd", "ms1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetBundleMicroserviceStatusInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "", time.Second).GetBundleMicroservice(context.Background(), "1234abcd", "ms1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestGetBundleMicroserviceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, "", time.Second).GetBundleMicroservice(context.Background(), "1234abcd", "ms1")
	assert.ErrorIs(t, err, model.ErrNetwork)
}
