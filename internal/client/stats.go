package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// StatsClient implements enterprise.StatsClient.
type StatsClient struct {
	httpClient *http.Client
}

// NewStatsClient creates a stats client.
func NewStatsClient(httpClient *http.Client) *StatsClient {
	return &StatsClient{httpClient: httpClient}
}

func (c *StatsClient) getSeries(ctx context.Context, path, resource string, query *enterprise.StatsQuery) (*enterprise.StatsResponse, error) {
	var out enterprise.StatsResponse
	if err := c.httpClient.Get(ctx, path, query.ToValues(), &out); err != nil {
		return nil, fmt.Errorf("getting %s stats: %w", resource, err)
	}

	return &out, nil
}

func (c *StatsClient) listSeries(ctx context.Context, path, resource string, query *enterprise.StatsQuery) ([]enterprise.StatsResponse, error) {
	var out []enterprise.StatsResponse
	if err := c.httpClient.Get(ctx, path, query.ToValues(), &out); err != nil {
		return nil, fmt.Errorf("listing %s stats: %w", resource, err)
	}

	if out == nil {
		out = []enterprise.StatsResponse{}
	}

	return out, nil
}

// Cluster returns the cluster-wide time series.
func (c *StatsClient) Cluster(ctx context.Context, query *enterprise.StatsQuery) (*enterprise.StatsResponse, error) {
	return c.getSeries(ctx, clusterPath+"/stats", "cluster", query)
}

// ClusterLast returns the most recent cluster sample.
func (c *StatsClient) ClusterLast(ctx context.Context) (*enterprise.StatsResponse, error) {
	return c.getSeries(ctx, clusterPath+"/stats/last", "cluster", nil)
}

// Node returns one node's time series.
func (c *StatsClient) Node(ctx context.Context, uid uint32, query *enterprise.StatsQuery) (*enterprise.StatsResponse, error) {
	return c.getSeries(ctx, fmt.Sprintf("%s/%d/stats", nodesPath, uid), "node", query)
}

// Nodes returns every node's time series.
func (c *StatsClient) Nodes(ctx context.Context, query *enterprise.StatsQuery) ([]enterprise.StatsResponse, error) {
	return c.listSeries(ctx, nodesPath+"/stats", "node", query)
}

// Database returns one database's time series.
func (c *StatsClient) Database(ctx context.Context, uid uint32, query *enterprise.StatsQuery) (*enterprise.StatsResponse, error) {
	return c.getSeries(ctx, fmt.Sprintf("%s/%d/stats", bdbsPath, uid), "database", query)
}

// Databases returns every database's time series.
func (c *StatsClient) Databases(ctx context.Context, query *enterprise.StatsQuery) ([]enterprise.StatsResponse, error) {
	return c.listSeries(ctx, bdbsPath+"/stats", "database", query)
}

// Shard returns one shard's time series.
func (c *StatsClient) Shard(ctx context.Context, uid uint32, query *enterprise.StatsQuery) (*enterprise.StatsResponse, error) {
	return c.getSeries(ctx, fmt.Sprintf("%s/%d/stats", shardsPath, uid), "shard", query)
}
