package client

import (
	"context"
	"fmt"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const clusterPath = "/v1/cluster"

// ClusterClient implements enterprise.ClusterClient.
type ClusterClient struct {
	httpClient *http.Client
}

// NewClusterClient creates a cluster client.
func NewClusterClient(httpClient *http.Client) *ClusterClient {
	return &ClusterClient{httpClient: httpClient}
}

// Info returns the cluster singleton.
func (c *ClusterClient) Info(ctx context.Context) (*enterprise.ClusterInfo, error) {
	var out enterprise.ClusterInfo
	if err := c.httpClient.Get(ctx, clusterPath, nil, &out); err != nil {
		return nil, fmt.Errorf("getting cluster info: %w", err)
	}

	return &out, nil
}

// Update updates cluster-wide settings.
func (c *ClusterClient) Update(ctx context.Context, request *enterprise.ClusterUpdateRequest) (*enterprise.ClusterInfo, error) {
	var out enterprise.ClusterInfo
	if err := c.httpClient.Put(ctx, clusterPath, request, &out); err != nil {
		return nil, fmt.Errorf("updating cluster: %w", err)
	}

	return &out, nil
}

// Policy returns the cluster default policies.
func (c *ClusterClient) Policy(ctx context.Context) (*enterprise.ClusterPolicy, error) {
	var out enterprise.ClusterPolicy
	if err := c.httpClient.Get(ctx, clusterPath+"/policy", nil, &out); err != nil {
		return nil, fmt.Errorf("getting cluster policy: %w", err)
	}

	return &out, nil
}

// UpdatePolicy replaces the cluster default policies.
func (c *ClusterClient) UpdatePolicy(ctx context.Context, request *enterprise.ClusterPolicy) error {
	if err := c.httpClient.Put(ctx, clusterPath+"/policy", request, nil); err != nil {
		return fmt.Errorf("updating cluster policy: %w", err)
	}

	return nil
}

// Topology describes node placement across the cluster.
func (c *ClusterClient) Topology(ctx context.Context) (*enterprise.ClusterTopology, error) {
	var out enterprise.ClusterTopology
	if err := c.httpClient.Get(ctx, clusterPath+"/topology", nil, &out); err != nil {
		return nil, fmt.Errorf("getting cluster topology: %w", err)
	}

	return &out, nil
}

// Alerts returns cluster-level alert states keyed by alert name.
func (c *ClusterClient) Alerts(ctx context.Context) (enterprise.AlertMap, error) {
	var out enterprise.AlertMap
	if err := c.httpClient.Get(ctx, clusterPath+"/alerts", nil, &out); err != nil {
		return nil, fmt.Errorf("listing cluster alerts: %w", err)
	}

	if out == nil {
		out = enterprise.AlertMap{}
	}

	return out, nil
}

// AlertSettings returns the cluster alert configuration.
func (c *ClusterClient) AlertSettings(ctx context.Context) (enterprise.AlertSettings, error) {
	var out enterprise.AlertSettings
	if err := c.httpClient.Get(ctx, clusterPath+"/alert_settings", nil, &out); err != nil {
		return nil, fmt.Errorf("getting alert settings: %w", err)
	}

	if out == nil {
		out = enterprise.AlertSettings{}
	}

	return out, nil
}

// UpdateAlertSettings replaces the cluster alert configuration.
func (c *ClusterClient) UpdateAlertSettings(ctx context.Context, settings enterprise.AlertSettings) error {
	if err := c.httpClient.Put(ctx, clusterPath+"/alert_settings", settings, nil); err != nil {
		return fmt.Errorf("updating alert settings: %w", err)
	}

	return nil
}

// RotateCertificates regenerates the cluster's internal certificates.
func (c *ClusterClient) RotateCertificates(ctx context.Context) error {
	if err := c.httpClient.Post(ctx, clusterPath+"/certificates/rotate", nil, nil); err != nil {
		return fmt.Errorf("rotating certificates: %w", err)
	}

	return nil
}

// UpdateCertificate replaces one named cluster certificate.
func (c *ClusterClient) UpdateCertificate(ctx context.Context, request *enterprise.CertificateUpdateRequest) error {
	if err := c.httpClient.Put(ctx, clusterPath+"/update_cert", request, nil); err != nil {
		return fmt.Errorf("updating certificate: %w", err)
	}

	return nil
}

// RemoveNode triggers the remove_node action for a node.
func (c *ClusterClient) RemoveNode(ctx context.Context, nodeUID uint32) (*enterprise.ActionResponse, error) {
	var out enterprise.ActionResponse

	body := map[string]uint32{"node_uid": nodeUID}
	if err := c.httpClient.Post(ctx, clusterPath+"/actions/remove_node", body, &out); err != nil {
		return nil, fmt.Errorf("removing node: %w", err)
	}

	return &out, nil
}

// Action triggers a named cluster action.
func (c *ClusterClient) Action(ctx context.Context, action string) (*enterprise.ActionResponse, error) {
	var out enterprise.ActionResponse
	if err := c.httpClient.Post(ctx, clusterPath+"/actions/"+action, nil, &out); err != nil {
		return nil, fmt.Errorf("running cluster action %s: %w", action, err)
	}

	return &out, nil
}
