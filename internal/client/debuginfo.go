package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
)

const debugInfoPath = "/v1/debuginfo"

// DebugInfoClient implements enterprise.DebugInfoClient.
type DebugInfoClient struct {
	httpClient *http.Client
}

// NewDebugInfoClient creates a debug-info client.
func NewDebugInfoClient(httpClient *http.Client) *DebugInfoClient {
	return &DebugInfoClient{httpClient: httpClient}
}

// All downloads the debug package covering the whole cluster. The payload
// is a gzipped tarball; callers persist it as-is.
func (c *DebugInfoClient) All(ctx context.Context) ([]byte, error) {
	data, err := c.httpClient.GetBinary(ctx, debugInfoPath+"/all")
	if err != nil {
		return nil, fmt.Errorf("downloading cluster debug package: %w", err)
	}

	return data, nil
}

// Node downloads the debug package for one node.
func (c *DebugInfoClient) Node(ctx context.Context, uid uint32) ([]byte, error) {
	data, err := c.httpClient.GetBinary(ctx, fmt.Sprintf("%s/node/%d", debugInfoPath, uid))
	if err != nil {
		return nil, fmt.Errorf("downloading node debug package: %w", err)
	}

	return data, nil
}
