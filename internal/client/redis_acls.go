package client

import (
	"context"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const redisACLsPath = "/v1/redis_acls"

// RedisACLsClient implements enterprise.RedisACLsClient.
type RedisACLsClient struct {
	httpClient *http.Client
}

// NewRedisACLsClient creates a Redis ACLs client.
func NewRedisACLsClient(httpClient *http.Client) *RedisACLsClient {
	return &RedisACLsClient{httpClient: httpClient}
}

// List returns all Redis ACLs.
func (c *RedisACLsClient) List(ctx context.Context) ([]enterprise.RedisACL, error) {
	return listResources[enterprise.RedisACL](ctx, c.httpClient, redisACLsPath, "redis acls")
}

// Get returns one Redis ACL.
func (c *RedisACLsClient) Get(ctx context.Context, uid uint32) (*enterprise.RedisACL, error) {
	return getResource[enterprise.RedisACL](ctx, c.httpClient, redisACLsPath, "redis acl", uid)
}

// Create creates a Redis ACL.
func (c *RedisACLsClient) Create(ctx context.Context, request *enterprise.RedisACLCreateRequest) (*enterprise.RedisACL, error) {
	return createResource[enterprise.RedisACL](ctx, c.httpClient, redisACLsPath, "redis acl", request)
}

// Update updates a Redis ACL.
func (c *RedisACLsClient) Update(ctx context.Context, uid uint32, request *enterprise.RedisACLUpdateRequest) (*enterprise.RedisACL, error) {
	return updateResource[enterprise.RedisACL](ctx, c.httpClient, redisACLsPath, "redis acl", uid, request)
}

// Delete deletes a Redis ACL.
func (c *RedisACLsClient) Delete(ctx context.Context, uid uint32) error {
	return deleteResource(ctx, c.httpClient, redisACLsPath, "redis acl", uid)
}
