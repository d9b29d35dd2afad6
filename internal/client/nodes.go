package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const nodesPath = "/v1/nodes"

// NodesClient implements enterprise.NodesClient.
type NodesClient struct {
	httpClient *http.Client
}

// NewNodesClient creates a nodes client.
func NewNodesClient(httpClient *http.Client) *NodesClient {
	return &NodesClient{httpClient: httpClient}
}

// List returns all cluster nodes.
func (c *NodesClient) List(ctx context.Context) ([]enterprise.Node, error) {
	return listResources[enterprise.Node](ctx, c.httpClient, nodesPath, "nodes")
}

// Get returns one node.
func (c *NodesClient) Get(ctx context.Context, uid uint32) (*enterprise.Node, error) {
	return getResource[enterprise.Node](ctx, c.httpClient, nodesPath, "node", uid)
}

// Update updates a node.
func (c *NodesClient) Update(ctx context.Context, uid uint32, request *enterprise.NodeUpdateRequest) (*enterprise.Node, error) {
	return updateResource[enterprise.Node](ctx, c.httpClient, nodesPath, "node", uid, request)
}

// Remove removes a node from the cluster.
func (c *NodesClient) Remove(ctx context.Context, uid uint32) error {
	return deleteResource(ctx, c.httpClient, nodesPath, "node", uid)
}

// Status returns a node's operational status.
func (c *NodesClient) Status(ctx context.Context, uid uint32) (*enterprise.NodeStatus, error) {
	var out enterprise.NodeStatus

	path := fmt.Sprintf("%s/%d/status", nodesPath, uid)
	if err := c.httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("getting node status: %w", err)
	}

	return &out, nil
}

// WatchdogStatus returns the watchdog's view of one node.
func (c *NodesClient) WatchdogStatus(ctx context.Context, uid uint32) (*enterprise.NodeStatus, error) {
	var out enterprise.NodeStatus

	path := fmt.Sprintf("%s/%d/wd_status", nodesPath, uid)
	if err := c.httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("getting node watchdog status: %w", err)
	}

	return &out, nil
}

// Action triggers a maintenance action on a node.
func (c *NodesClient) Action(ctx context.Context, uid uint32, action string) (*enterprise.ActionResponse, error) {
	var out enterprise.ActionResponse

	path := fmt.Sprintf("%s/%d/actions/%s", nodesPath, uid, action)
	if err := c.httpClient.Post(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("running node action %s: %w", action, err)
	}

	return &out, nil
}

// ActionStatus reads the state of a previously triggered node action.
func (c *NodesClient) ActionStatus(ctx context.Context, uid uint32, action string) (*enterprise.ActionResponse, error) {
	var out enterprise.ActionResponse

	path := fmt.Sprintf("%s/%d/actions/%s", nodesPath, uid, action)
	if err := c.httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("getting node action status: %w", err)
	}

	return &out, nil
}

// Alerts returns the node's alert states keyed by alert name.
func (c *NodesClient) Alerts(ctx context.Context, uid uint32) (enterprise.AlertMap, error) {
	var out enterprise.AlertMap

	path := fmt.Sprintf("%s/%d/alerts", nodesPath, uid)
	if err := c.httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("listing node alerts: %w", err)
	}

	if out == nil {
		out = enterprise.AlertMap{}
	}

	return out, nil
}
