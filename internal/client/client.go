package client

import (
	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// Client is the concrete enterprise.Client. All resource clients share one
// HTTP chokepoint and are safe for concurrent use.
type Client struct {
	httpClient *http.Client

	databases   *DatabasesClient
	crdbs       *CRDBsClient
	crdbTasks   *CRDBTasksClient
	nodes       *NodesClient
	cluster     *ClusterClient
	users       *UsersClient
	roles       *RolesClient
	redisACLs   *RedisACLsClient
	license     *LicenseClient
	modules     *ModulesClient
	logs        *LogsClient
	alerts      *AlertsClient
	actions     *ActionsClient
	bootstrap   *BootstrapClient
	stats       *StatsClient
	shards      *ShardsClient
	diagnostics *DiagnosticsClient
	debugInfo   *DebugInfoClient
	service     *ServiceAdapter
}

// New builds the concrete client from a validated config. Validation and
// URL normalization happen in the public constructor package.
func New(config *enterprise.Config) *Client {
	httpClient := http.NewClient(config)

	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.databases = NewDatabasesClient(c.httpClient)
	c.crdbs = NewCRDBsClient(c.httpClient)
	c.crdbTasks = NewCRDBTasksClient(c.httpClient)
	c.nodes = NewNodesClient(c.httpClient)
	c.cluster = NewClusterClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.roles = NewRolesClient(c.httpClient)
	c.redisACLs = NewRedisACLsClient(c.httpClient)
	c.license = NewLicenseClient(c.httpClient)
	c.modules = NewModulesClient(c.httpClient)
	c.logs = NewLogsClient(c.httpClient)
	c.alerts = NewAlertsClient(c.httpClient)
	c.actions = NewActionsClient(c.httpClient)
	c.bootstrap = NewBootstrapClient(c.httpClient)
	c.stats = NewStatsClient(c.httpClient)
	c.shards = NewShardsClient(c.httpClient)
	c.diagnostics = NewDiagnosticsClient(c.httpClient)
	c.debugInfo = NewDebugInfoClient(c.httpClient)
	c.service = NewServiceAdapter(c.httpClient, 0)
}

// Databases returns the databases client.
func (c *Client) Databases() enterprise.DatabasesClient { return c.databases }

// CRDBs returns the Active-Active databases client.
func (c *Client) CRDBs() enterprise.CRDBsClient { return c.crdbs }

// CRDBTasks returns the Active-Active task client.
func (c *Client) CRDBTasks() enterprise.CRDBTasksClient { return c.crdbTasks }

// Nodes returns the nodes client.
func (c *Client) Nodes() enterprise.NodesClient { return c.nodes }

// Cluster returns the cluster client.
func (c *Client) Cluster() enterprise.ClusterClient { return c.cluster }

// Users returns the users client.
func (c *Client) Users() enterprise.UsersClient { return c.users }

// Roles returns the roles client.
func (c *Client) Roles() enterprise.RolesClient { return c.roles }

// RedisACLs returns the Redis ACLs client.
func (c *Client) RedisACLs() enterprise.RedisACLsClient { return c.redisACLs }

// License returns the license client.
func (c *Client) License() enterprise.LicenseClient { return c.license }

// Modules returns the modules client.
func (c *Client) Modules() enterprise.ModulesClient { return c.modules }

// Logs returns the logs client.
func (c *Client) Logs() enterprise.LogsClient { return c.logs }

// Alerts returns the alerts client.
func (c *Client) Alerts() enterprise.AlertsClient { return c.alerts }

// Actions returns the actions client.
func (c *Client) Actions() enterprise.ActionsClient { return c.actions }

// Bootstrap returns the bootstrap client.
func (c *Client) Bootstrap() enterprise.BootstrapClient { return c.bootstrap }

// Stats returns the stats client.
func (c *Client) Stats() enterprise.StatsClient { return c.stats }

// Shards returns the shards client.
func (c *Client) Shards() enterprise.ShardsClient { return c.shards }

// Diagnostics returns the diagnostics client.
func (c *Client) Diagnostics() enterprise.DiagnosticsClient { return c.diagnostics }

// DebugInfo returns the debug-info client.
func (c *Client) DebugInfo() enterprise.DebugInfoClient { return c.debugInfo }

// Service returns the generic call adapter.
func (c *Client) Service() enterprise.Service { return c.service }
