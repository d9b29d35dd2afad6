package client

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const (
	modulesPath   = "/v1/modules"
	modulesV2Path = "/v2/modules"
)

// ModulesClient implements enterprise.ModulesClient.
type ModulesClient struct {
	httpClient *http.Client
}

// NewModulesClient creates a modules client.
func NewModulesClient(httpClient *http.Client) *ModulesClient {
	return &ModulesClient{httpClient: httpClient}
}

// List returns all modules available on the cluster.
func (c *ModulesClient) List(ctx context.Context) ([]enterprise.Module, error) {
	return listResources[enterprise.Module](ctx, c.httpClient, modulesPath, "modules")
}

// Get returns one module by its string uid.
func (c *ModulesClient) Get(ctx context.Context, uid string) (*enterprise.Module, error) {
	return getResource[enterprise.Module](ctx, c.httpClient, modulesPath, "module", uid)
}

// Delete removes a module from the cluster.
func (c *ModulesClient) Delete(ctx context.Context, uid string) error {
	return deleteResource(ctx, c.httpClient, modulesPath, "module", uid)
}

// Upload installs a module package. The v2 endpoint is tried first; on
// clusters that predate it (404) the upload is retried against v1.
func (c *ModulesClient) Upload(ctx context.Context, filename string, contents io.Reader) (*enterprise.Module, error) {
	// Buffer once so the v1 fallback can resend the same bytes.
	data, err := io.ReadAll(contents)
	if err != nil {
		return nil, fmt.Errorf("reading module package: %w", err)
	}

	var out enterprise.Module

	err = c.httpClient.PostMultipart(ctx, modulesV2Path, "module", filename, bytes.NewReader(data), &out)
	if err == nil {
		return &out, nil
	}

	if !enterprise.IsNotFound(err) {
		return nil, fmt.Errorf("uploading module: %w", err)
	}

	if err := c.httpClient.PostMultipart(ctx, modulesPath, "module", filename, bytes.NewReader(data), &out); err != nil {
		return nil, fmt.Errorf("uploading module: %w", err)
	}

	return &out, nil
}
