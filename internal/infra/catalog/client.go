// Package catalog is an HTTP client for the bundle catalog of the remote
// platform.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bundle-cli/internal/domain/model"
	"bundle-cli/pkg/log"
)

const (
	// DefaultTimeout bounds every catalog request.
	DefaultTimeout = 10 * time.Second
	// MaxResponseSize bounds the body read from a catalog response.
	MaxResponseSize = 1 << 20
)

// Client represents an HTTP client for the catalog API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new catalog client. token is sent as a bearer token
// when not empty.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError represents a non-success response from the catalog
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request_failed:%d", e.StatusCode)
	}
	return fmt.Sprintf("request_failed:%d: %s", e.StatusCode, e.Body)
}

// GetBundleMicroservice fetches the catalog entry of serviceName inside the
// bundle identified by bundleID.
func (c *Client) GetBundleMicroservice(ctx context.Context, bundleID, serviceName string) (model.CatalogMicroservice, error) {
	endpoint := fmt.Sprintf("%s/bundles/%s/plugins/%s", c.baseURL, url.PathEscape(bundleID), url.PathEscape(serviceName))
	log.Debug("Requesting bundle microservice from catalog", "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.CatalogMicroservice{}, model.WrapNetworkError(err, "failed to create catalog request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.CatalogMicroservice{}, model.WrapNetworkError(err, "failed to reach catalog at %s", c.baseURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return model.CatalogMicroservice{}, model.WrapNetworkError(err, "failed to read catalog response")
	}
	if len(body) > MaxResponseSize {
		return model.CatalogMicroservice{}, model.WrapNetworkError(nil, "catalog response exceeds %d bytes", MaxResponseSize)
	}

	log.Debug("Catalog response", "status_code", resp.StatusCode)

	if resp.StatusCode == http.StatusNotFound {
		return model.CatalogMicroservice{}, model.WrapNotFoundError(
			&APIError{StatusCode: resp.StatusCode, Body: string(body)},
			"microservice %s not found in bundle %s", serviceName, bundleID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.CatalogMicroservice{}, model.WrapNetworkError(
			&APIError{StatusCode: resp.StatusCode, Body: string(body)},
			"catalog request for microservice %s failed", serviceName)
	}

	var ms model.CatalogMicroservice
	if err := json.Unmarshal(body, &ms); err != nil {
		return model.CatalogMicroservice{}, model.WrapNetworkError(err, "failed to decode catalog response")
	}
	if ms.IngressPath == "" {
		return model.CatalogMicroservice{}, model.WrapNetworkError(nil, "catalog returned no ingress path for microservice %s", serviceName)
	}
	return ms, nil
}
