package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const shardsPath = "/v1/shards"

// ShardsClient implements enterprise.ShardsClient.
type ShardsClient struct {
	httpClient *http.Client
}

// NewShardsClient creates a shards client.
func NewShardsClient(httpClient *http.Client) *ShardsClient {
	return &ShardsClient{httpClient: httpClient}
}

// List returns all shards.
func (c *ShardsClient) List(ctx context.Context) ([]enterprise.Shard, error) {
	return listResources[enterprise.Shard](ctx, c.httpClient, shardsPath, "shards")
}

// Get returns one shard.
func (c *ShardsClient) Get(ctx context.Context, uid uint32) (*enterprise.Shard, error) {
	return getResource[enterprise.Shard](ctx, c.httpClient, shardsPath, "shard", uid)
}

// ListForDatabase returns a database's shards.
func (c *ShardsClient) ListForDatabase(ctx context.Context, bdbUID uint32) ([]enterprise.Shard, error) {
	path := fmt.Sprintf("%s/%d/shards", bdbsPath, bdbUID)

	return listResources[enterprise.Shard](ctx, c.httpClient, path, "database shards")
}

// ListForNode returns the shards placed on a node.
func (c *ShardsClient) ListForNode(ctx context.Context, nodeUID uint32) ([]enterprise.Shard, error) {
	path := fmt.Sprintf("%s/%d/shards", nodesPath, nodeUID)

	return listResources[enterprise.Shard](ctx, c.httpClient, path, "node shards")
}
