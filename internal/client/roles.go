package client

import (
	"context"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const rolesPath = "/v1/roles"

// RolesClient implements enterprise.RolesClient.
type RolesClient struct {
	httpClient *http.Client
}

// NewRolesClient creates a roles client.
func NewRolesClient(httpClient *http.Client) *RolesClient {
	return &RolesClient{httpClient: httpClient}
}

// List returns all roles.
func (c *RolesClient) List(ctx context.Context) ([]enterprise.Role, error) {
	return listResources[enterprise.Role](ctx, c.httpClient, rolesPath, "roles")
}

// Get returns one role.
func (c *RolesClient) Get(ctx context.Context, uid uint32) (*enterprise.Role, error) {
	return getResource[enterprise.Role](ctx, c.httpClient, rolesPath, "role", uid)
}

// Create creates a role.
func (c *RolesClient) Create(ctx context.Context, request *enterprise.RoleCreateRequest) (*enterprise.Role, error) {
	return createResource[enterprise.Role](ctx, c.httpClient, rolesPath, "role", request)
}

// Update updates a role.
func (c *RolesClient) Update(ctx context.Context, uid uint32, request *enterprise.RoleUpdateRequest) (*enterprise.Role, error) {
	return updateResource[enterprise.Role](ctx, c.httpClient, rolesPath, "role", uid, request)
}

// Delete deletes a role.
func (c *RolesClient) Delete(ctx context.Context, uid uint32) error {
	return deleteResource(ctx, c.httpClient, rolesPath, "role", uid)
}
