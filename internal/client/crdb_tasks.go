package client

import (
	"context"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const crdbTasksPath = "/v1/crdb_tasks"

// CRDBTasksClient implements enterprise.CRDBTasksClient.
type CRDBTasksClient struct {
	httpClient *http.Client
}

// NewCRDBTasksClient creates an Active-Active task client.
func NewCRDBTasksClient(httpClient *http.Client) *CRDBTasksClient {
	return &CRDBTasksClient{httpClient: httpClient}
}

// List returns all tracked Active-Active tasks.
func (c *CRDBTasksClient) List(ctx context.Context) ([]enterprise.CRDBTask, error) {
	return listResources[enterprise.CRDBTask](ctx, c.httpClient, crdbTasksPath, "crdb tasks")
}

// Get returns one task by its id.
func (c *CRDBTasksClient) Get(ctx context.Context, taskID string) (*enterprise.CRDBTask, error) {
	return getResource[enterprise.CRDBTask](ctx, c.httpClient, crdbTasksPath, "crdb task", taskID)
}

// Create starts a task against an Active-Active database.
func (c *CRDBTasksClient) Create(ctx context.Context, request *enterprise.CRDBTaskCreateRequest) (*enterprise.CRDBTask, error) {
	return createResource[enterprise.CRDBTask](ctx, c.httpClient, crdbTasksPath, "crdb task", request)
}

// Cancel requests cancellation of a queued or running task.
func (c *CRDBTasksClient) Cancel(ctx context.Context, taskID string) error {
	return deleteResource(ctx, c.httpClient, crdbTasksPath, "crdb task", taskID)
}
