package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const alertsPath = "/v1/alerts"

// AlertsClient implements enterprise.AlertsClient.
type AlertsClient struct {
	httpClient *http.Client
}

// NewAlertsClient creates an alerts client.
func NewAlertsClient(httpClient *http.Client) *AlertsClient {
	return &AlertsClient{httpClient: httpClient}
}

// List returns all alerts across the cluster.
func (c *AlertsClient) List(ctx context.Context) ([]enterprise.Alert, error) {
	return listResources[enterprise.Alert](ctx, c.httpClient, alertsPath, "alerts")
}

// Get returns one alert by its string uid.
func (c *AlertsClient) Get(ctx context.Context, uid string) (*enterprise.Alert, error) {
	return getResource[enterprise.Alert](ctx, c.httpClient, alertsPath, "alert", uid)
}

// ListForDatabase returns a database's alert states keyed by alert name.
func (c *AlertsClient) ListForDatabase(ctx context.Context, bdbUID uint32) (enterprise.AlertMap, error) {
	var out enterprise.AlertMap

	path := fmt.Sprintf("%s/%d/alerts", bdbsPath, bdbUID)
	if err := c.httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("listing database alerts: %w", err)
	}

	if out == nil {
		out = enterprise.AlertMap{}
	}

	return out, nil
}

// ListForNode returns a node's alert states keyed by alert name.
func (c *AlertsClient) ListForNode(ctx context.Context, nodeUID uint32) (enterprise.AlertMap, error) {
	var out enterprise.AlertMap

	path := fmt.Sprintf("%s/%d/alerts", nodesPath, nodeUID)
	if err := c.httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("listing node alerts: %w", err)
	}

	if out == nil {
		out = enterprise.AlertMap{}
	}

	return out, nil
}
