package enterprise

import (
	"context"
	"io"
)

// DataClients groups the clients for data-plane resources.
type DataClients interface {
	Databases() DatabasesClient
	CRDBs() CRDBsClient
	CRDBTasks() CRDBTasksClient
	Shards() ShardsClient
	RedisACLs() RedisACLsClient
}

// TopologyClients groups the clients for cluster topology resources.
type TopologyClients interface {
	Cluster() ClusterClient
	Nodes() NodesClient
	Bootstrap() BootstrapClient
}

// AccessClients groups the clients for access-control resources.
type AccessClients interface {
	Users() UsersClient
	Roles() RolesClient
}

// OperationsClients groups the clients for operational visibility.
type OperationsClients interface {
	Logs() LogsClient
	Alerts() AlertsClient
	Actions() ActionsClient
	Stats() StatsClient
	Diagnostics() DiagnosticsClient
	DebugInfo() DebugInfoClient
}

// PlatformClients groups the clients for cluster-wide platform resources.
type PlatformClients interface {
	License() LicenseClient
	Modules() ModulesClient
}

// Client is the full typed surface of the cluster-management API.
type Client interface {
	DataClients
	TopologyClients
	AccessClients
	OperationsClients
	PlatformClients

	// Service returns the generic call adapter over this client.
	Service() Service
}

// DatabasesClient manages databases (bdbs).
type DatabasesClient interface {
	List(ctx context.Context) ([]Database, error)
	Get(ctx context.Context, uid uint32) (*Database, error)
	Create(ctx context.Context, request *DatabaseCreateRequest) (*Database, error)
	// CreateV2 creates through the /v2 endpoint, which accepts the same
	// payload but runs asynchronously behind an action.
	CreateV2(ctx context.Context, request *DatabaseCreateRequest) (*Database, error)
	Update(ctx context.Context, uid uint32, request *DatabaseUpdateRequest) (*Database, error)
	Delete(ctx context.Context, uid uint32) error

	Export(ctx context.Context, uid uint32) (*ActionResponse, error)
	Import(ctx context.Context, uid uint32, request *DatabaseImportRequest) (*ActionResponse, error)
	Flush(ctx context.Context, uid uint32) (*ActionResponse, error)
	Backup(ctx context.Context, uid uint32) (*ActionResponse, error)
	Restore(ctx context.Context, uid uint32, request *DatabaseRestoreRequest) (*ActionResponse, error)
	ResetPasswords(ctx context.Context, uid uint32) error
	Upgrade(ctx context.Context, uid uint32, request *DatabaseUpgradeRequest) (*Database, error)

	Shards(ctx context.Context, uid uint32) ([]Shard, error)
	Endpoints(ctx context.Context, uid uint32) ([]Endpoint, error)
	Availability(ctx context.Context, uid uint32) error
}

// CRDBsClient manages Active-Active databases (crdbs).
type CRDBsClient interface {
	List(ctx context.Context) ([]CRDB, error)
	Get(ctx context.Context, guid string) (*CRDB, error)
	Create(ctx context.Context, request *CRDBCreateRequest) (*CRDB, error)
	Update(ctx context.Context, guid string, request *CRDBUpdateRequest) (*CRDB, error)
	Delete(ctx context.Context, guid string) error

	// Tasks lists the tasks running against one Active-Active database.
	Tasks(ctx context.Context, guid string) ([]CRDBTask, error)
}

// CRDBTasksClient tracks asynchronous Active-Active database operations.
type CRDBTasksClient interface {
	List(ctx context.Context) ([]CRDBTask, error)
	Get(ctx context.Context, taskID string) (*CRDBTask, error)
	Create(ctx context.Context, request *CRDBTaskCreateRequest) (*CRDBTask, error)
	// Cancel requests cancellation of a queued or running task.
	Cancel(ctx context.Context, taskID string) error
}

// DiagnosticsClient runs cluster health checks and reads their reports.
type DiagnosticsClient interface {
	// Run executes diagnostic checks. A nil request runs every check on
	// every node and database.
	Run(ctx context.Context, request *DiagnosticCheckRequest) (*DiagnosticReport, error)
	// Checks returns the names of the available diagnostic checks.
	Checks(ctx context.Context) ([]string, error)
	LastReport(ctx context.Context) (*DiagnosticReport, error)
	Report(ctx context.Context, reportID string) (*DiagnosticReport, error)
	Reports(ctx context.Context) ([]DiagnosticReport, error)
}

// NodesClient manages cluster nodes.
type NodesClient interface {
	List(ctx context.Context) ([]Node, error)
	Get(ctx context.Context, uid uint32) (*Node, error)
	Update(ctx context.Context, uid uint32, request *NodeUpdateRequest) (*Node, error)
	// Remove removes a node from the cluster.
	Remove(ctx context.Context, uid uint32) error

	Status(ctx context.Context, uid uint32) (*NodeStatus, error)
	// WatchdogStatus reads the node's state as the watchdog sees it.
	WatchdogStatus(ctx context.Context, uid uint32) (*NodeStatus, error)
	// Action triggers a maintenance action on a node, e.g. "check" or
	// "maintenance_on".
	Action(ctx context.Context, uid uint32, action string) (*ActionResponse, error)
	ActionStatus(ctx context.Context, uid uint32, action string) (*ActionResponse, error)
	Alerts(ctx context.Context, uid uint32) (AlertMap, error)
}

// ClusterClient manages the cluster singleton.
type ClusterClient interface {
	Info(ctx context.Context) (*ClusterInfo, error)
	Update(ctx context.Context, request *ClusterUpdateRequest) (*ClusterInfo, error)

	Policy(ctx context.Context) (*ClusterPolicy, error)
	UpdatePolicy(ctx context.Context, request *ClusterPolicy) error

	Topology(ctx context.Context) (*ClusterTopology, error)
	Alerts(ctx context.Context) (AlertMap, error)
	AlertSettings(ctx context.Context) (AlertSettings, error)
	UpdateAlertSettings(ctx context.Context, settings AlertSettings) error

	// RotateCertificates regenerates the cluster's internal certificates.
	RotateCertificates(ctx context.Context) error
	UpdateCertificate(ctx context.Context, request *CertificateUpdateRequest) error

	// RemoveNode triggers the remove_node cluster action for a node.
	RemoveNode(ctx context.Context, nodeUID uint32) (*ActionResponse, error)
	// Action triggers a named cluster action such as "recover".
	Action(ctx context.Context, action string) (*ActionResponse, error)
}

// UsersClient manages control-plane users.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, uid uint32) (*User, error)
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	Update(ctx context.Context, uid uint32, request *UserUpdateRequest) (*User, error)
	Delete(ctx context.Context, uid uint32) error

	// Authorize exchanges credentials for a JWT.
	Authorize(ctx context.Context, request *AuthorizeRequest) (*AuthToken, error)
	// RefreshJWT exchanges a valid JWT for a fresh one.
	RefreshJWT(ctx context.Context, jwt string) (*AuthToken, error)

	SetPassword(ctx context.Context, request *PasswordRequest) error
	UpdatePassword(ctx context.Context, request *PasswordRequest) error
	DeletePassword(ctx context.Context, request *PasswordRequest) error

	Permissions(ctx context.Context) (map[string]Permission, error)
	Permission(ctx context.Context, name string) (*Permission, error)
}

// RolesClient manages roles.
type RolesClient interface {
	List(ctx context.Context) ([]Role, error)
	Get(ctx context.Context, uid uint32) (*Role, error)
	Create(ctx context.Context, request *RoleCreateRequest) (*Role, error)
	Update(ctx context.Context, uid uint32, request *RoleUpdateRequest) (*Role, error)
	Delete(ctx context.Context, uid uint32) error
}

// RedisACLsClient manages Redis ACL definitions.
type RedisACLsClient interface {
	List(ctx context.Context) ([]RedisACL, error)
	Get(ctx context.Context, uid uint32) (*RedisACL, error)
	Create(ctx context.Context, request *RedisACLCreateRequest) (*RedisACL, error)
	Update(ctx context.Context, uid uint32, request *RedisACLUpdateRequest) (*RedisACL, error)
	Delete(ctx context.Context, uid uint32) error
}

// LicenseClient manages the cluster license.
type LicenseClient interface {
	Get(ctx context.Context) (*License, error)
	Update(ctx context.Context, request *LicenseUpdateRequest) error
	Usage(ctx context.Context) (*LicenseUsage, error)
	// Cluster reads the license as reported under the cluster resource.
	Cluster(ctx context.Context) (*License, error)
}

// ModulesClient manages Redis modules available on the cluster.
type ModulesClient interface {
	List(ctx context.Context) ([]Module, error)
	Get(ctx context.Context, uid string) (*Module, error)
	Delete(ctx context.Context, uid string) error
	// Upload installs a module package. It tries the v2 endpoint first and
	// falls back to v1 on clusters that predate it.
	Upload(ctx context.Context, filename string, contents io.Reader) (*Module, error)
}

// LogsClient reads the cluster event log.
type LogsClient interface {
	List(ctx context.Context, query *LogsQuery) ([]LogEntry, error)
}

// AlertsClient reads alert state across the cluster.
type AlertsClient interface {
	List(ctx context.Context) ([]Alert, error)
	Get(ctx context.Context, uid string) (*Alert, error)
	ListForDatabase(ctx context.Context, bdbUID uint32) (AlertMap, error)
	ListForNode(ctx context.Context, nodeUID uint32) (AlertMap, error)
}

// ActionsClient tracks long-running cluster actions.
type ActionsClient interface {
	List(ctx context.Context) ([]Action, error)
	// ListV2 uses the richer /v2 listing available on recent clusters.
	ListV2(ctx context.Context) ([]Action, error)
	Get(ctx context.Context, actionUID string) (*Action, error)
	// Cancel requests cancellation of a queued or running action.
	Cancel(ctx context.Context, actionUID string) error
}

// BootstrapClient drives initial cluster setup.
type BootstrapClient interface {
	Status(ctx context.Context) (*BootstrapStatus, error)
	// CreateCluster bootstraps a brand new cluster on this node.
	CreateCluster(ctx context.Context, request *BootstrapRequest) error
	// Join adds this node to an existing cluster.
	Join(ctx context.Context, request *BootstrapRequest) error
}

// StatsClient reads time-series statistics.
type StatsClient interface {
	Cluster(ctx context.Context, query *StatsQuery) (*StatsResponse, error)
	ClusterLast(ctx context.Context) (*StatsResponse, error)
	Node(ctx context.Context, uid uint32, query *StatsQuery) (*StatsResponse, error)
	Nodes(ctx context.Context, query *StatsQuery) ([]StatsResponse, error)
	Database(ctx context.Context, uid uint32, query *StatsQuery) (*StatsResponse, error)
	Databases(ctx context.Context, query *StatsQuery) ([]StatsResponse, error)
	Shard(ctx context.Context, uid uint32, query *StatsQuery) (*StatsResponse, error)
}

// ShardsClient reads shard placement and state.
type ShardsClient interface {
	List(ctx context.Context) ([]Shard, error)
	Get(ctx context.Context, uid uint32) (*Shard, error)
	ListForDatabase(ctx context.Context, bdbUID uint32) ([]Shard, error)
	ListForNode(ctx context.Context, nodeUID uint32) ([]Shard, error)
}

// DebugInfoClient downloads support packages.
type DebugInfoClient interface {
	// All downloads the debug package covering the whole cluster.
	All(ctx context.Context) ([]byte, error)
	// Node downloads the debug package for one node.
	Node(ctx context.Context, uid uint32) ([]byte, error)
}
