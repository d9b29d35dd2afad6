package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

func TestIDPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "numeric id", path: idPath("/v1/bdbs", uint32(42)), expected: "/v1/bdbs/42"},
		{name: "zero id", path: idPath("/v1/bdbs", uint32(0)), expected: "/v1/bdbs/0"},
		{name: "plain string id", path: idPath("/v1/modules", "search"), expected: "/v1/modules/search"},
		{name: "string id with slash", path: idPath("/v1/modules", "a/b"), expected: "/v1/modules/a%2Fb"},
		{name: "string id with spaces", path: idPath("/v1/modules", "my module"), expected: "/v1/modules/my%20module"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, testCase.path)
		})
	}
}

func TestListResources_EmptyCollection(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, []enterprise.Database{})
	client := server.Client()

	databases, err := client.Databases().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, databases)
	assert.Empty(t, databases)
}

func TestGetResource_NotFound(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusNotFound, map[string]string{
		"error_code":  "db_not_exist",
		"description": "database does not exist",
	})
	client := server.Client()

	database, err := client.Databases().Get(context.Background(), 99)
	require.Error(t, err)
	assert.Nil(t, database)
	assert.True(t, enterprise.IsNotFound(err))
	assert.Contains(t, err.Error(), "getting database")
}

func TestDeleteResource_NoContent(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusNoContent, nil)
	client := server.Client()

	err := client.Databases().Delete(context.Background(), 7)
	require.NoError(t, err)
	server.AssertCalled(t, "DELETE", "/v1/bdbs/7")
}

func TestGetResource_EscapedStringID(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, enterprise.Module{UID: "a/b", ModuleName: "search"})
	client := server.Client()

	module, err := client.Modules().Get(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", module.UID)

	// The raw identifier never appears in the path.
	call := server.LastCall(t)
	assert.Equal(t, "/v1/modules/a%2Fb", call.Path)
}
