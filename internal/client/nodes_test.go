package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNodesClient_CRUD(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, []enterprise.Node{
			{UID: 1, Addr: "10.0.0.1", Status: "active"},
			{UID: 2, Addr: "10.0.0.2", Status: "active"},
		})

		nodes, err := server.Client().Nodes().List(context.Background())
		require.NoError(t, err)
		require.Len(t, nodes, 2)
		assert.Equal(t, uint32(1), nodes[0].UID)
		server.AssertCalled(t, "GET", "/v1/nodes")
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.Node{
			UID:    3,
			Addr:   "10.0.0.3",
			Status: "active",
			Cores:  16,
		})

		node, err := server.Client().Nodes().Get(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, uint32(16), node.Cores)
		server.AssertCalled(t, "GET", "/v1/nodes/3")
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.Node{UID: 3, RackID: "rack-b"})

		rackID := "rack-b"
		node, err := server.Client().Nodes().Update(context.Background(), 3, &enterprise.NodeUpdateRequest{
			RackID: &rackID,
		})
		require.NoError(t, err)
		assert.Equal(t, "rack-b", node.RackID)

		server.AssertCalled(t, "PUT", "/v1/nodes/3")
		assert.Contains(t, string(server.LastCall(t).Body), `"rack_id":"rack-b"`)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil)

		err := server.Client().Nodes().Remove(context.Background(), 4)
		require.NoError(t, err)
		server.AssertCalled(t, "DELETE", "/v1/nodes/4")
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNodesClient_StatusAndActions(t *testing.T) {
	t.Parallel()

	t.Run("status", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.NodeStatus{Status: "active"})

		status, err := server.Client().Nodes().Status(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "active", status.Status)
		server.AssertCalled(t, "GET", "/v1/nodes/1/status")
	})

	t.Run("watchdog status", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.NodeStatus{Status: "ok"})

		status, err := server.Client().Nodes().WatchdogStatus(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "ok", status.Status)
		server.AssertCalled(t, "GET", "/v1/nodes/1/wd_status")
	})

	t.Run("maintenance action", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.ActionResponse{ActionUID: "act-9"})

		action, err := server.Client().Nodes().Action(context.Background(), 2, "maintenance_on")
		require.NoError(t, err)
		assert.Equal(t, "act-9", action.ActionUID)
		server.AssertCalled(t, "POST", "/v1/nodes/2/actions/maintenance_on")
	})

	t.Run("action status", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.ActionResponse{ActionUID: "act-9"})

		action, err := server.Client().Nodes().ActionStatus(context.Background(), 2, "maintenance_on")
		require.NoError(t, err)
		assert.Equal(t, "act-9", action.ActionUID)
		server.AssertCalled(t, "GET", "/v1/nodes/2/actions/maintenance_on")
	})

	t.Run("alerts map is never nil", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, map[string]interface{}{})

		alerts, err := server.Client().Nodes().Alerts(context.Background(), 2)
		require.NoError(t, err)
		require.NotNil(t, alerts)
		assert.Empty(t, alerts)
		server.AssertCalled(t, "GET", "/v1/nodes/2/alerts")
	})
}
