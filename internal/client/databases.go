package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const (
	bdbsPath   = "/v1/bdbs"
	bdbsV2Path = "/v2/bdbs"
)

// DatabasesClient implements enterprise.DatabasesClient.
type DatabasesClient struct {
	httpClient *http.Client
}

// NewDatabasesClient creates a databases client.
func NewDatabasesClient(httpClient *http.Client) *DatabasesClient {
	return &DatabasesClient{httpClient: httpClient}
}

// List returns all databases.
func (c *DatabasesClient) List(ctx context.Context) ([]enterprise.Database, error) {
	return listResources[enterprise.Database](ctx, c.httpClient, bdbsPath, "databases")
}

// Get returns one database.
func (c *DatabasesClient) Get(ctx context.Context, uid uint32) (*enterprise.Database, error) {
	return getResource[enterprise.Database](ctx, c.httpClient, bdbsPath, "database", uid)
}

// Create creates a database.
func (c *DatabasesClient) Create(ctx context.Context, request *enterprise.DatabaseCreateRequest) (*enterprise.Database, error) {
	return createResource[enterprise.Database](ctx, c.httpClient, bdbsPath, "database", request)
}

// CreateV2 creates a database through the v2 endpoint.
func (c *DatabasesClient) CreateV2(ctx context.Context, request *enterprise.DatabaseCreateRequest) (*enterprise.Database, error) {
	return createResource[enterprise.Database](ctx, c.httpClient, bdbsV2Path, "database", request)
}

// Update updates a database.
func (c *DatabasesClient) Update(ctx context.Context, uid uint32, request *enterprise.DatabaseUpdateRequest) (*enterprise.Database, error) {
	return updateResource[enterprise.Database](ctx, c.httpClient, bdbsPath, "database", uid, request)
}

// Delete deletes a database.
func (c *DatabasesClient) Delete(ctx context.Context, uid uint32) error {
	return deleteResource(ctx, c.httpClient, bdbsPath, "database", uid)
}

// action posts to one of the per-database action endpoints.
func (c *DatabasesClient) action(ctx context.Context, uid uint32, action string, body interface{}) (*enterprise.ActionResponse, error) {
	var out enterprise.ActionResponse

	path := fmt.Sprintf("%s/%d/actions/%s", bdbsPath, uid, action)
	if err := c.httpClient.Post(ctx, path, body, &out); err != nil {
		return nil, fmt.Errorf("running database action %s: %w", action, err)
	}

	return &out, nil
}

// Export triggers a dataset export using the database's configured target.
func (c *DatabasesClient) Export(ctx context.Context, uid uint32) (*enterprise.ActionResponse, error) {
	return c.action(ctx, uid, "export", nil)
}

// Import triggers a dataset import.
func (c *DatabasesClient) Import(ctx context.Context, uid uint32, request *enterprise.DatabaseImportRequest) (*enterprise.ActionResponse, error) {
	return c.action(ctx, uid, "import", request)
}

// Flush deletes all keys in the database.
func (c *DatabasesClient) Flush(ctx context.Context, uid uint32) (*enterprise.ActionResponse, error) {
	return c.action(ctx, uid, "flush", nil)
}

// Backup triggers an immediate backup.
func (c *DatabasesClient) Backup(ctx context.Context, uid uint32) (*enterprise.ActionResponse, error) {
	return c.action(ctx, uid, "backup", nil)
}

// Restore restores the database from a backup.
func (c *DatabasesClient) Restore(ctx context.Context, uid uint32, request *enterprise.DatabaseRestoreRequest) (*enterprise.ActionResponse, error) {
	return c.action(ctx, uid, "restore", request)
}

// ResetPasswords invalidates the database's access passwords.
func (c *DatabasesClient) ResetPasswords(ctx context.Context, uid uint32) error {
	path := fmt.Sprintf("%s/%d/passwords", bdbsPath, uid)
	if err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("resetting database passwords: %w", err)
	}

	return nil
}

// Upgrade upgrades the database's Redis version.
func (c *DatabasesClient) Upgrade(ctx context.Context, uid uint32, request *enterprise.DatabaseUpgradeRequest) (*enterprise.Database, error) {
	var out enterprise.Database

	path := fmt.Sprintf("%s/%d/upgrade", bdbsPath, uid)
	if err := c.httpClient.Post(ctx, path, request, &out); err != nil {
		return nil, fmt.Errorf("upgrading database: %w", err)
	}

	return &out, nil
}

// Shards lists the database's shards.
func (c *DatabasesClient) Shards(ctx context.Context, uid uint32) ([]enterprise.Shard, error) {
	path := fmt.Sprintf("%s/%d/shards", bdbsPath, uid)

	return listResources[enterprise.Shard](ctx, c.httpClient, path, "database shards")
}

// Endpoints lists the database's endpoints.
func (c *DatabasesClient) Endpoints(ctx context.Context, uid uint32) ([]enterprise.Endpoint, error) {
	path := fmt.Sprintf("%s/%d/endpoints", bdbsPath, uid)

	return listResources[enterprise.Endpoint](ctx, c.httpClient, path, "database endpoints")
}

// Availability probes the database's availability endpoint; nil means the
// database is serving.
func (c *DatabasesClient) Availability(ctx context.Context, uid uint32) error {
	path := fmt.Sprintf("%s/%d/availability", bdbsPath, uid)
	if err := c.httpClient.Get(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("checking database availability: %w", err)
	}

	return nil
}
