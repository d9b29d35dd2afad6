package client

import (
	"context"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const (
	actionsPath   = "/v1/actions"
	actionsV2Path = "/v2/actions"
)

// ActionsClient implements enterprise.ActionsClient.
type ActionsClient struct {
	httpClient *http.Client
}

// NewActionsClient creates an actions client.
func NewActionsClient(httpClient *http.Client) *ActionsClient {
	return &ActionsClient{httpClient: httpClient}
}

// List returns all tracked actions.
func (c *ActionsClient) List(ctx context.Context) ([]enterprise.Action, error) {
	return listResources[enterprise.Action](ctx, c.httpClient, actionsPath, "actions")
}

// ListV2 returns all tracked actions through the richer v2 listing.
func (c *ActionsClient) ListV2(ctx context.Context) ([]enterprise.Action, error) {
	return listResources[enterprise.Action](ctx, c.httpClient, actionsV2Path, "actions")
}

// Get returns one action by its uid.
func (c *ActionsClient) Get(ctx context.Context, actionUID string) (*enterprise.Action, error) {
	return getResource[enterprise.Action](ctx, c.httpClient, actionsPath, "action", actionUID)
}

// Cancel requests cancellation of a queued or running action.
func (c *ActionsClient) Cancel(ctx context.Context, actionUID string) error {
	return deleteResource(ctx, c.httpClient, actionsPath, "action", actionUID)
}
