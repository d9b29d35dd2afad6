package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const licensePath = "/v1/license"

// LicenseClient implements enterprise.LicenseClient.
type LicenseClient struct {
	httpClient *http.Client
}

// NewLicenseClient creates a license client.
func NewLicenseClient(httpClient *http.Client) *LicenseClient {
	return &LicenseClient{httpClient: httpClient}
}

// Get returns the cluster license.
func (c *LicenseClient) Get(ctx context.Context) (*enterprise.License, error) {
	var out enterprise.License
	if err := c.httpClient.Get(ctx, licensePath, nil, &out); err != nil {
		return nil, fmt.Errorf("getting license: %w", err)
	}

	return &out, nil
}

// Update replaces the license key.
func (c *LicenseClient) Update(ctx context.Context, request *enterprise.LicenseUpdateRequest) error {
	if err := c.httpClient.Put(ctx, licensePath, request, nil); err != nil {
		return fmt.Errorf("updating license: %w", err)
	}

	return nil
}

// Usage reports consumption against the license limits.
func (c *LicenseClient) Usage(ctx context.Context) (*enterprise.LicenseUsage, error) {
	var out enterprise.LicenseUsage
	if err := c.httpClient.Get(ctx, licensePath+"/usage", nil, &out); err != nil {
		return nil, fmt.Errorf("getting license usage: %w", err)
	}

	return &out, nil
}

// Cluster reads the license as reported under the cluster resource.
func (c *LicenseClient) Cluster(ctx context.Context) (*enterprise.License, error) {
	var out enterprise.License
	if err := c.httpClient.Get(ctx, clusterPath+"/license", nil, &out); err != nil {
		return nil, fmt.Errorf("getting cluster license: %w", err)
	}

	return &out, nil
}
