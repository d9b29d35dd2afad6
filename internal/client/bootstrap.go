package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const bootstrapPath = "/v1/bootstrap"

// BootstrapClient implements enterprise.BootstrapClient.
type BootstrapClient struct {
	httpClient *http.Client
}

// NewBootstrapClient creates a bootstrap client.
func NewBootstrapClient(httpClient *http.Client) *BootstrapClient {
	return &BootstrapClient{httpClient: httpClient}
}

// Status reports bootstrap progress on this node. Nodes mid-bootstrap may
// answer with an empty body; that decodes to a zero status.
func (c *BootstrapClient) Status(ctx context.Context) (*enterprise.BootstrapStatus, error) {
	var out enterprise.BootstrapStatus
	if err := c.httpClient.Get(ctx, bootstrapPath, nil, &out); err != nil {
		return nil, fmt.Errorf("getting bootstrap status: %w", err)
	}

	return &out, nil
}

// CreateCluster bootstraps a brand new cluster on this node.
func (c *BootstrapClient) CreateCluster(ctx context.Context, request *enterprise.BootstrapRequest) error {
	request.Action = "create_cluster"

	if err := c.httpClient.Post(ctx, bootstrapPath+"/create_cluster", request, nil); err != nil {
		return fmt.Errorf("creating cluster: %w", err)
	}

	return nil
}

// Join adds this node to an existing cluster.
func (c *BootstrapClient) Join(ctx context.Context, request *enterprise.BootstrapRequest) error {
	request.Action = "join_cluster"

	if err := c.httpClient.Post(ctx, bootstrapPath+"/join", request, nil); err != nil {
		return fmt.Errorf("joining cluster: %w", err)
	}

	return nil
}
