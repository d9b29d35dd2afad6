package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const logsPath = "/v1/logs"

// LogsClient implements enterprise.LogsClient.
type LogsClient struct {
	httpClient *http.Client
}

// NewLogsClient creates a logs client.
func NewLogsClient(httpClient *http.Client) *LogsClient {
	return &LogsClient{httpClient: httpClient}
}

// List returns cluster event log entries matching the query. A nil query
// selects everything.
func (c *LogsClient) List(ctx context.Context, query *enterprise.LogsQuery) ([]enterprise.LogEntry, error) {
	var out []enterprise.LogEntry
	if err := c.httpClient.Get(ctx, logsPath, query.ToValues(), &out); err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}

	if out == nil {
		out = []enterprise.LogEntry{}
	}

	return out, nil
}
