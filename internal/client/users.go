package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const usersPath = "/v1/users"

// UsersClient implements enterprise.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// List returns all users.
func (c *UsersClient) List(ctx context.Context) ([]enterprise.User, error) {
	return listResources[enterprise.User](ctx, c.httpClient, usersPath, "users")
}

// Get returns one user.
func (c *UsersClient) Get(ctx context.Context, uid uint32) (*enterprise.User, error) {
	return getResource[enterprise.User](ctx, c.httpClient, usersPath, "user", uid)
}

// Create creates a user.
func (c *UsersClient) Create(ctx context.Context, request *enterprise.UserCreateRequest) (*enterprise.User, error) {
	return createResource[enterprise.User](ctx, c.httpClient, usersPath, "user", request)
}

// Update updates a user.
func (c *UsersClient) Update(ctx context.Context, uid uint32, request *enterprise.UserUpdateRequest) (*enterprise.User, error) {
	return updateResource[enterprise.User](ctx, c.httpClient, usersPath, "user", uid, request)
}

// Delete deletes a user.
func (c *UsersClient) Delete(ctx context.Context, uid uint32) error {
	return deleteResource(ctx, c.httpClient, usersPath, "user", uid)
}

// Authorize exchanges credentials for a JWT.
func (c *UsersClient) Authorize(ctx context.Context, request *enterprise.AuthorizeRequest) (*enterprise.AuthToken, error) {
	var out enterprise.AuthToken
	if err := c.httpClient.Post(ctx, usersPath+"/authorize", request, &out); err != nil {
		return nil, fmt.Errorf("authorizing user: %w", err)
	}

	return &out, nil
}

// RefreshJWT exchanges a valid JWT for a fresh one.
func (c *UsersClient) RefreshJWT(ctx context.Context, jwt string) (*enterprise.AuthToken, error) {
	var out enterprise.AuthToken

	body := map[string]string{"jwt": jwt}
	if err := c.httpClient.Post(ctx, usersPath+"/refresh_jwt", body, &out); err != nil {
		return nil, fmt.Errorf("refreshing jwt: %w", err)
	}

	return &out, nil
}

// SetPassword adds a password to a user's accepted set.
func (c *UsersClient) SetPassword(ctx context.Context, request *enterprise.PasswordRequest) error {
	if err := c.httpClient.Post(ctx, usersPath+"/password", request, nil); err != nil {
		return fmt.Errorf("setting password: %w", err)
	}

	return nil
}

// UpdatePassword replaces a user's password.
func (c *UsersClient) UpdatePassword(ctx context.Context, request *enterprise.PasswordRequest) error {
	if err := c.httpClient.Put(ctx, usersPath+"/password", request, nil); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}

// DeletePassword removes a password from a user's accepted set.
func (c *UsersClient) DeletePassword(ctx context.Context, request *enterprise.PasswordRequest) error {
	_, err := c.httpClient.Do(ctx, &http.Request{
		Method: "DELETE",
		Path:   usersPath + "/password",
		Body:   request,
	})
	if err != nil {
		return fmt.Errorf("deleting password: %w", err)
	}

	return nil
}

// Permissions returns every API permission and the roles holding it.
func (c *UsersClient) Permissions(ctx context.Context) (map[string]enterprise.Permission, error) {
	var out map[string]enterprise.Permission
	if err := c.httpClient.Get(ctx, usersPath+"/permissions", nil, &out); err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}

	if out == nil {
		out = map[string]enterprise.Permission{}
	}

	return out, nil
}

// Permission returns one named permission.
func (c *UsersClient) Permission(ctx context.Context, name string) (*enterprise.Permission, error) {
	var out enterprise.Permission
	if err := c.httpClient.Get(ctx, usersPath+"/permissions/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, fmt.Errorf("getting permission: %w", err)
	}

	return &out, nil
}
