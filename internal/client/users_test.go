package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestUsersClient_CRUD(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, []enterprise.User{
			{UID: 1, Email: "admin@example.com", Role: "admin"},
			{UID: 2, Email: "viewer@example.com", Role: "cluster_viewer"},
		})

		users, err := server.Client().Users().List(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "admin@example.com", users[0].Email)
		server.AssertCalled(t, "GET", "/v1/users")
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.User{UID: 1, Email: "admin@example.com"})

		user, err := server.Client().Users().Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), user.UID)
		server.AssertCalled(t, "GET", "/v1/users/1")
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusCreated, enterprise.User{UID: 3, Email: "new@example.com"})

		user, err := server.Client().Users().Create(context.Background(), &enterprise.UserCreateRequest{
			Email:    "new@example.com",
			Password: "initial-secret",
			Role:     "db_member",
		})
		require.NoError(t, err)
		assert.Equal(t, uint32(3), user.UID)

		call := server.LastCall(t)
		assert.Equal(t, "POST", call.Method)
		assert.Equal(t, "/v1/users", call.Path)

		var body map[string]interface{}

		require.NoError(t, json.Unmarshal(call.Body, &body))
		assert.Equal(t, "db_member", body["role"])
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.User{UID: 1, Email: "admin@example.com", Role: "admin"})

		role := "admin"
		user, err := server.Client().Users().Update(context.Background(), 1, &enterprise.UserUpdateRequest{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Role)
		server.AssertCalled(t, "PUT", "/v1/users/1")
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil)

		err := server.Client().Users().Delete(context.Background(), 2)
		require.NoError(t, err)
		server.AssertCalled(t, "DELETE", "/v1/users/2")
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestUsersClient_AuthAndPermissions(t *testing.T) {
	t.Parallel()

	t.Run("authorize", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.AuthToken{JWT: "eyJhbGciOi.test.token"})

		token, err := server.Client().Users().Authorize(context.Background(), &enterprise.AuthorizeRequest{
			Email:    "admin@example.com",
			Password: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "eyJhbGciOi.test.token", token.JWT)
		server.AssertCalled(t, "POST", "/v1/users/authorize")
	})

	t.Run("authorize bad credentials", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusUnauthorized, nil)

		token, err := server.Client().Users().Authorize(context.Background(), &enterprise.AuthorizeRequest{
			Email:    "admin@example.com",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Nil(t, token)
		assert.True(t, enterprise.IsAuthenticationFailed(err))
	})

	t.Run("refresh jwt", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.AuthToken{JWT: "refreshed.token"})

		token, err := server.Client().Users().RefreshJWT(context.Background(), "stale.token")
		require.NoError(t, err)
		assert.Equal(t, "refreshed.token", token.JWT)

		call := server.LastCall(t)
		assert.Equal(t, "/v1/users/refresh_jwt", call.Path)
		assert.Contains(t, string(call.Body), "stale.token")
	})

	t.Run("password lifecycle", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil)
		users := server.Client().Users()

		request := &enterprise.PasswordRequest{Email: "admin@example.com", Password: "new-secret"}

		require.NoError(t, users.SetPassword(context.Background(), request))
		server.AssertCalled(t, "POST", "/v1/users/password")

		require.NoError(t, users.UpdatePassword(context.Background(), request))
		server.AssertCalled(t, "PUT", "/v1/users/password")

		require.NoError(t, users.DeletePassword(context.Background(), request))
		server.AssertCalled(t, "DELETE", "/v1/users/password")
	})

	t.Run("permissions map", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, map[string]enterprise.Permission{
			"view_bdb_info": {Roles: []string{"admin", "db_viewer"}},
		})

		permissions, err := server.Client().Users().Permissions(context.Background())
		require.NoError(t, err)
		require.Contains(t, permissions, "view_bdb_info")
		assert.Equal(t, []string{"admin", "db_viewer"}, permissions["view_bdb_info"].Roles)
	})

	t.Run("single permission escapes its name", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.Permission{Roles: []string{"admin"}})

		permission, err := server.Client().Users().Permission(context.Background(), "update cluster")
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, permission.Roles)
		server.AssertCalled(t, "GET", "/v1/users/permissions/update%20cluster")
	})
}
