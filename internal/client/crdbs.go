package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const crdbsPath = "/v1/crdbs"

// CRDBsClient implements enterprise.CRDBsClient.
type CRDBsClient struct {
	httpClient *http.Client
}

// NewCRDBsClient creates an Active-Active databases client.
func NewCRDBsClient(httpClient *http.Client) *CRDBsClient {
	return &CRDBsClient{httpClient: httpClient}
}

// List returns all Active-Active databases.
func (c *CRDBsClient) List(ctx context.Context) ([]enterprise.CRDB, error) {
	return listResources[enterprise.CRDB](ctx, c.httpClient, crdbsPath, "crdbs")
}

// Get returns one Active-Active database by its GUID.
func (c *CRDBsClient) Get(ctx context.Context, guid string) (*enterprise.CRDB, error) {
	return getResource[enterprise.CRDB](ctx, c.httpClient, crdbsPath, "crdb", guid)
}

// Create creates an Active-Active database across the named instances.
func (c *CRDBsClient) Create(ctx context.Context, request *enterprise.CRDBCreateRequest) (*enterprise.CRDB, error) {
	return createResource[enterprise.CRDB](ctx, c.httpClient, crdbsPath, "crdb", request)
}

// Update updates an Active-Active database.
func (c *CRDBsClient) Update(ctx context.Context, guid string, request *enterprise.CRDBUpdateRequest) (*enterprise.CRDB, error) {
	return updateResource[enterprise.CRDB](ctx, c.httpClient, crdbsPath, "crdb", guid, request)
}

// Delete deletes an Active-Active database from all participating
// clusters.
func (c *CRDBsClient) Delete(ctx context.Context, guid string) error {
	return deleteResource(ctx, c.httpClient, crdbsPath, "crdb", guid)
}

// Tasks lists the tasks running against one Active-Active database.
func (c *CRDBsClient) Tasks(ctx context.Context, guid string) ([]enterprise.CRDBTask, error) {
	var out []enterprise.CRDBTask

	path := idPath(crdbsPath, guid) + "/tasks"
	if err := c.httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("listing crdb tasks: %w", err)
	}

	if out == nil {
		out = []enterprise.CRDBTask{}
	}

	return out, nil
}
