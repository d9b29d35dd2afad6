package enterprise

// Entity types for the cluster-management API. Every response entity keeps
// unmodeled fields in an Extra bag so schema drift between cluster versions
// never breaks decoding; request types marshal only what the caller set.

// Database represents a database (bdb).
type Database struct {
	UID             uint32     `json:"uid" yaml:"uid"`
	Name            string     `json:"name" yaml:"name"`
	Port            uint16     `json:"port,omitempty" yaml:"port,omitempty"`
	Status          string     `json:"status,omitempty" yaml:"status,omitempty"`
	Type            string     `json:"type,omitempty" yaml:"type,omitempty"`
	Version         string     `json:"version,omitempty" yaml:"version,omitempty"`
	MemorySize      uint64     `json:"memory_size,omitempty" yaml:"memory_size,omitempty"`
	MemoryUsed      uint64     `json:"memory_used,omitempty" yaml:"memory_used,omitempty"`
	ShardsCount     uint32     `json:"shards_count,omitempty" yaml:"shards_count,omitempty"`
	ShardList       []uint32   `json:"shard_list,omitempty" yaml:"shard_list,omitempty"`
	Sharding        bool       `json:"sharding,omitempty" yaml:"sharding,omitempty"`
	Replication     bool       `json:"replication,omitempty" yaml:"replication,omitempty"`
	DataPersistence string     `json:"data_persistence,omitempty" yaml:"data_persistence,omitempty"`
	EvictionPolicy  string     `json:"eviction_policy,omitempty" yaml:"eviction_policy,omitempty"`
	Endpoints       []Endpoint `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`
	CreatedTime     string     `json:"created_time,omitempty" yaml:"created_time,omitempty"`
	LastChangedTime string     `json:"last_changed_time,omitempty" yaml:"last_changed_time,omitempty"`
	LastBackupTime  string     `json:"last_backup_time,omitempty" yaml:"last_backup_time,omitempty"`
	ActionUID       string     `json:"action_uid,omitempty" yaml:"action_uid,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (d *Database) UnmarshalJSON(data []byte) error {
	type alias Database

	return UnmarshalExtra(data, (*alias)(d), &d.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (d Database) MarshalJSON() ([]byte, error) {
	type alias Database

	return MarshalExtra(alias(d), d.Extra)
}

// Endpoint represents a database endpoint.
type Endpoint struct {
	UID         string   `json:"uid,omitempty" yaml:"uid,omitempty"`
	DNSName     string   `json:"dns_name,omitempty" yaml:"dns_name,omitempty"`
	Addr        []string `json:"addr,omitempty" yaml:"addr,omitempty"`
	Port        uint16   `json:"port,omitempty" yaml:"port,omitempty"`
	ProxyPolicy string   `json:"proxy_policy,omitempty" yaml:"proxy_policy,omitempty"`
}

// DatabaseCreateRequest creates a database.
type DatabaseCreateRequest struct {
	// Name is the only required field.
	Name            string         `json:"name" yaml:"name"`
	Port            uint16         `json:"port,omitempty" yaml:"port,omitempty"`
	Type            string         `json:"type,omitempty" yaml:"type,omitempty"`
	MemorySize      uint64         `json:"memory_size,omitempty" yaml:"memory_size,omitempty"`
	Sharding        bool           `json:"sharding,omitempty" yaml:"sharding,omitempty"`
	ShardsCount     uint32         `json:"shards_count,omitempty" yaml:"shards_count,omitempty"`
	ShardsPlacement string         `json:"shards_placement,omitempty" yaml:"shards_placement,omitempty"`
	Replication     *bool          `json:"replication,omitempty" yaml:"replication,omitempty"`
	DataPersistence string         `json:"data_persistence,omitempty" yaml:"data_persistence,omitempty"`
	EvictionPolicy  string         `json:"eviction_policy,omitempty" yaml:"eviction_policy,omitempty"`
	Password        string         `json:"authentication_redis_pass,omitempty" yaml:"authentication_redis_pass,omitempty"`
	ModuleList      []ModuleConfig `json:"module_list,omitempty" yaml:"module_list,omitempty"`
}

// ModuleConfig binds a module to a database at creation time.
type ModuleConfig struct {
	ModuleName      string `json:"module_name" yaml:"module_name"`
	ModuleArgs      string `json:"module_args,omitempty" yaml:"module_args,omitempty"`
	SemanticVersion string `json:"semantic_version,omitempty" yaml:"semantic_version,omitempty"`
}

// DatabaseUpdateRequest updates a database. Nil fields are left unchanged.
type DatabaseUpdateRequest struct {
	Name            *string `json:"name,omitempty" yaml:"name,omitempty"`
	MemorySize      *uint64 `json:"memory_size,omitempty" yaml:"memory_size,omitempty"`
	Replication     *bool   `json:"replication,omitempty" yaml:"replication,omitempty"`
	DataPersistence *string `json:"data_persistence,omitempty" yaml:"data_persistence,omitempty"`
	EvictionPolicy  *string `json:"eviction_policy,omitempty" yaml:"eviction_policy,omitempty"`
	Password        *string `json:"authentication_redis_pass,omitempty" yaml:"authentication_redis_pass,omitempty"`
}

// ImportSource locates a dataset for import.
type ImportSource struct {
	Type string `json:"type" yaml:"type"`
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// DatabaseImportRequest triggers a dataset import.
type DatabaseImportRequest struct {
	DatasetImportSources []ImportSource `json:"dataset_import_sources,omitempty" yaml:"dataset_import_sources,omitempty"`
}

// DatabaseRestoreRequest restores a database from a backup.
type DatabaseRestoreRequest struct {
	BackupUID string `json:"backup_uid,omitempty" yaml:"backup_uid,omitempty"`
}

// ModuleUpgrade names a module version change within a database upgrade.
type ModuleUpgrade struct {
	ModuleName string `json:"module_name" yaml:"module_name"`
	NewVersion string `json:"new_version,omitempty" yaml:"new_version,omitempty"`
	ModuleArgs string `json:"module_args,omitempty" yaml:"module_args,omitempty"`
}

// DatabaseUpgradeRequest upgrades a database's Redis version.
type DatabaseUpgradeRequest struct {
	RedisVersion          string          `json:"redis_version,omitempty" yaml:"redis_version,omitempty"`
	PreserveRoles         *bool           `json:"preserve_roles,omitempty" yaml:"preserve_roles,omitempty"`
	ForceRestart          *bool           `json:"force_restart,omitempty" yaml:"force_restart,omitempty"`
	MayDiscardData        *bool           `json:"may_discard_data,omitempty" yaml:"may_discard_data,omitempty"`
	ParallelShardsUpgrade uint32          `json:"parallel_shards_upgrade,omitempty" yaml:"parallel_shards_upgrade,omitempty"`
	Modules               []ModuleUpgrade `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// ActionResponse acknowledges an asynchronous action.
type ActionResponse struct {
	ActionUID   string `json:"action_uid,omitempty" yaml:"action_uid,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (r *ActionResponse) UnmarshalJSON(data []byte) error {
	type alias ActionResponse

	return UnmarshalExtra(data, (*alias)(r), &r.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (r ActionResponse) MarshalJSON() ([]byte, error) {
	type alias ActionResponse

	return MarshalExtra(alias(r), r.Extra)
}

// Node represents a cluster node.
type Node struct {
	UID             uint32   `json:"uid" yaml:"uid"`
	Addr            string   `json:"addr,omitempty" yaml:"addr,omitempty"`
	Status          string   `json:"status,omitempty" yaml:"status,omitempty"`
	AcceptServers   *bool    `json:"accept_servers,omitempty" yaml:"accept_servers,omitempty"`
	Architecture    string   `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Cores           uint32   `json:"cores,omitempty" yaml:"cores,omitempty"`
	TotalMemory     uint64   `json:"total_memory,omitempty" yaml:"total_memory,omitempty"`
	OSVersion       string   `json:"os_version,omitempty" yaml:"os_version,omitempty"`
	SoftwareVersion string   `json:"software_version,omitempty" yaml:"software_version,omitempty"`
	RackID          string   `json:"rack_id,omitempty" yaml:"rack_id,omitempty"`
	ShardCount      uint32   `json:"shard_count,omitempty" yaml:"shard_count,omitempty"`
	ShardList       []uint32 `json:"shard_list,omitempty" yaml:"shard_list,omitempty"`
	Uptime          uint64   `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	ExternalAddr    []string `json:"external_addr,omitempty" yaml:"external_addr,omitempty"`
	PublicAddr      string   `json:"public_addr,omitempty" yaml:"public_addr,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (n *Node) UnmarshalJSON(data []byte) error {
	type alias Node

	return UnmarshalExtra(data, (*alias)(n), &n.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (n Node) MarshalJSON() ([]byte, error) {
	type alias Node

	return MarshalExtra(alias(n), n.Extra)
}

// NodeUpdateRequest updates a node. Nil fields are left unchanged.
type NodeUpdateRequest struct {
	Addr          *string  `json:"addr,omitempty" yaml:"addr,omitempty"`
	ExternalAddr  []string `json:"external_addr,omitempty" yaml:"external_addr,omitempty"`
	RackID        *string  `json:"rack_id,omitempty" yaml:"rack_id,omitempty"`
	AcceptServers *bool    `json:"accept_servers,omitempty" yaml:"accept_servers,omitempty"`
}

// NodeStatus reports a node's operational state.
type NodeStatus struct {
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (s *NodeStatus) UnmarshalJSON(data []byte) error {
	type alias NodeStatus

	return UnmarshalExtra(data, (*alias)(s), &s.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (s NodeStatus) MarshalJSON() ([]byte, error) {
	type alias NodeStatus

	return MarshalExtra(alias(s), s.Extra)
}

// ClusterInfo represents the cluster singleton.
type ClusterInfo struct {
	Name            string   `json:"name" yaml:"name"`
	Created         string   `json:"created,omitempty" yaml:"created,omitempty"`
	Version         string   `json:"version,omitempty" yaml:"version,omitempty"`
	Status          string   `json:"status,omitempty" yaml:"status,omitempty"`
	LicenseExpired  *bool    `json:"license_expired,omitempty" yaml:"license_expired,omitempty"`
	Nodes           []uint32 `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Databases       []uint32 `json:"databases,omitempty" yaml:"databases,omitempty"`
	EmailAlerts     *bool    `json:"email_alerts,omitempty" yaml:"email_alerts,omitempty"`
	RackAware       *bool    `json:"rack_aware,omitempty" yaml:"rack_aware,omitempty"`
	CnmHTTPPort     uint16   `json:"cnm_http_port,omitempty" yaml:"cnm_http_port,omitempty"`
	CnmHTTPSPort    uint16   `json:"cnm_https_port,omitempty" yaml:"cnm_https_port,omitempty"`
	LastChangedTime string   `json:"last_changed_time,omitempty" yaml:"last_changed_time,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (c *ClusterInfo) UnmarshalJSON(data []byte) error {
	type alias ClusterInfo

	return UnmarshalExtra(data, (*alias)(c), &c.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (c ClusterInfo) MarshalJSON() ([]byte, error) {
	type alias ClusterInfo

	return MarshalExtra(alias(c), c.Extra)
}

// ClusterUpdateRequest updates cluster-wide settings. Nil fields are left
// unchanged.
type ClusterUpdateRequest struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	EmailAlerts *bool   `json:"email_alerts,omitempty" yaml:"email_alerts,omitempty"`
	RackAware   *bool   `json:"rack_aware,omitempty" yaml:"rack_aware,omitempty"`
	Timezone    *string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// ClusterPolicy holds the cluster-wide default policies.
type ClusterPolicy struct {
	AutoRecovery                 *bool   `json:"auto_recovery,omitempty" yaml:"auto_recovery,omitempty"`
	RackAware                    *bool   `json:"rack_aware,omitempty" yaml:"rack_aware,omitempty"`
	DefaultNonShardedProxyPolicy string  `json:"default_non_sharded_proxy_policy,omitempty" yaml:"default_non_sharded_proxy_policy,omitempty"`
	DefaultShardedProxyPolicy    string  `json:"default_sharded_proxy_policy,omitempty" yaml:"default_sharded_proxy_policy,omitempty"`
	DefaultShardsPlacement       string  `json:"default_shards_placement,omitempty" yaml:"default_shards_placement,omitempty"`
	RedisUpgradePolicy           string  `json:"redis_upgrade_policy,omitempty" yaml:"redis_upgrade_policy,omitempty"`
	MaxSimultaneousBackups       uint32  `json:"max_simultaneous_backups,omitempty" yaml:"max_simultaneous_backups,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (p *ClusterPolicy) UnmarshalJSON(data []byte) error {
	type alias ClusterPolicy

	return UnmarshalExtra(data, (*alias)(p), &p.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (p ClusterPolicy) MarshalJSON() ([]byte, error) {
	type alias ClusterPolicy

	return MarshalExtra(alias(p), p.Extra)
}

// ClusterNode is a node as reported in the cluster topology.
type ClusterNode struct {
	UID         uint32 `json:"uid" yaml:"uid"`
	Address     string `json:"address,omitempty" yaml:"address,omitempty"`
	Status      string `json:"status,omitempty" yaml:"status,omitempty"`
	Role        string `json:"role,omitempty" yaml:"role,omitempty"`
	TotalMemory uint64 `json:"total_memory,omitempty" yaml:"total_memory,omitempty"`
	UsedMemory  uint64 `json:"used_memory,omitempty" yaml:"used_memory,omitempty"`
}

// ClusterTopology describes node placement across the cluster.
type ClusterTopology struct {
	Nodes []ClusterNode `json:"nodes,omitempty" yaml:"nodes,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (t *ClusterTopology) UnmarshalJSON(data []byte) error {
	type alias ClusterTopology

	return UnmarshalExtra(data, (*alias)(t), &t.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (t ClusterTopology) MarshalJSON() ([]byte, error) {
	type alias ClusterTopology

	return MarshalExtra(alias(t), t.Extra)
}

// CertificateUpdateRequest replaces one of the cluster certificates.
type CertificateUpdateRequest struct {
	Name        string `json:"name" yaml:"name"`
	Certificate string `json:"certificate" yaml:"certificate"`
	Key         string `json:"key,omitempty" yaml:"key,omitempty"`
}

// Alert is one alert's state.
type Alert struct {
	Enabled    *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	State      *bool  `json:"state,omitempty" yaml:"state,omitempty"`
	Severity   string `json:"severity,omitempty" yaml:"severity,omitempty"`
	ChangeTime string `json:"change_time,omitempty" yaml:"change_time,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (a *Alert) UnmarshalJSON(data []byte) error {
	type alias Alert

	return UnmarshalExtra(data, (*alias)(a), &a.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (a Alert) MarshalJSON() ([]byte, error) {
	type alias Alert

	return MarshalExtra(alias(a), a.Extra)
}

// AlertMap keys alert state by alert name, the shape the per-database and
// per-node alert endpoints return.
type AlertMap map[string]Alert

// AlertSetting configures one alert.
type AlertSetting struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Threshold string `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// AlertSettings keys alert configuration by alert name.
type AlertSettings map[string]AlertSetting

// User represents a control-plane user.
type User struct {
	UID               uint32   `json:"uid" yaml:"uid"`
	Email             string   `json:"email" yaml:"email"`
	Name              string   `json:"name,omitempty" yaml:"name,omitempty"`
	Role              string   `json:"role,omitempty" yaml:"role,omitempty"`
	RoleUIDs          []uint32 `json:"role_uids,omitempty" yaml:"role_uids,omitempty"`
	Status            string   `json:"status,omitempty" yaml:"status,omitempty"`
	AuthMethod        string   `json:"auth_method,omitempty" yaml:"auth_method,omitempty"`
	EmailAlerts       *bool    `json:"email_alerts,omitempty" yaml:"email_alerts,omitempty"`
	BDBs              []uint32 `json:"bdbs,omitempty" yaml:"bdbs,omitempty"`
	PasswordIssueDate string   `json:"password_issue_date,omitempty" yaml:"password_issue_date,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User

	return UnmarshalExtra(data, (*alias)(u), &u.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (u User) MarshalJSON() ([]byte, error) {
	type alias User

	return MarshalExtra(alias(u), u.Extra)
}

// UserCreateRequest creates a user.
type UserCreateRequest struct {
	Email       string   `json:"email" yaml:"email"`
	Password    string   `json:"password" yaml:"password"`
	Role        string   `json:"role,omitempty" yaml:"role,omitempty"`
	RoleUIDs    []uint32 `json:"role_uids,omitempty" yaml:"role_uids,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	EmailAlerts *bool    `json:"email_alerts,omitempty" yaml:"email_alerts,omitempty"`
	AuthMethod  string   `json:"auth_method,omitempty" yaml:"auth_method,omitempty"`
}

// UserUpdateRequest updates a user. Nil fields are left unchanged.
type UserUpdateRequest struct {
	Email       *string  `json:"email,omitempty" yaml:"email,omitempty"`
	Password    *string  `json:"password,omitempty" yaml:"password,omitempty"`
	Role        *string  `json:"role,omitempty" yaml:"role,omitempty"`
	RoleUIDs    []uint32 `json:"role_uids,omitempty" yaml:"role_uids,omitempty"`
	Name        *string  `json:"name,omitempty" yaml:"name,omitempty"`
	EmailAlerts *bool    `json:"email_alerts,omitempty" yaml:"email_alerts,omitempty"`
	AuthMethod  *string  `json:"auth_method,omitempty" yaml:"auth_method,omitempty"`
}

// AuthorizeRequest exchanges credentials for a JWT.
type AuthorizeRequest struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// AuthToken is a JWT issued by the cluster.
type AuthToken struct {
	JWT       string `json:"jwt" yaml:"jwt"`
	ExpiresAt string `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (t *AuthToken) UnmarshalJSON(data []byte) error {
	type alias AuthToken

	return UnmarshalExtra(data, (*alias)(t), &t.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (t AuthToken) MarshalJSON() ([]byte, error) {
	type alias AuthToken

	return MarshalExtra(alias(t), t.Extra)
}

// PasswordRequest manages a user's passwords. Set uses Email and Password;
// Update additionally carries NewPassword; Delete removes Password from the
// accepted set.
type PasswordRequest struct {
	Email           string `json:"email" yaml:"email"`
	Password        string `json:"password,omitempty" yaml:"password,omitempty"`
	CurrentPassword string `json:"current_password,omitempty" yaml:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty" yaml:"new_password,omitempty"`
}

// Permission maps an API permission to the roles holding it.
type Permission struct {
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// Role represents a role.
type Role struct {
	UID        uint32 `json:"uid" yaml:"uid"`
	Name       string `json:"name" yaml:"name"`
	Management string `json:"management,omitempty" yaml:"management,omitempty"`
	DataAccess string `json:"data_access,omitempty" yaml:"data_access,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (r *Role) UnmarshalJSON(data []byte) error {
	type alias Role

	return UnmarshalExtra(data, (*alias)(r), &r.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (r Role) MarshalJSON() ([]byte, error) {
	type alias Role

	return MarshalExtra(alias(r), r.Extra)
}

// RoleCreateRequest creates a role.
type RoleCreateRequest struct {
	Name       string `json:"name" yaml:"name"`
	Management string `json:"management,omitempty" yaml:"management,omitempty"`
}

// RoleUpdateRequest updates a role. Nil fields are left unchanged.
type RoleUpdateRequest struct {
	Name       *string `json:"name,omitempty" yaml:"name,omitempty"`
	Management *string `json:"management,omitempty" yaml:"management,omitempty"`
}

// RedisACL represents a Redis ACL definition.
type RedisACL struct {
	UID         uint32   `json:"uid" yaml:"uid"`
	Name        string   `json:"name" yaml:"name"`
	ACL         string   `json:"acl" yaml:"acl"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	BDBs        []uint32 `json:"bdbs,omitempty" yaml:"bdbs,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (a *RedisACL) UnmarshalJSON(data []byte) error {
	type alias RedisACL

	return UnmarshalExtra(data, (*alias)(a), &a.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (a RedisACL) MarshalJSON() ([]byte, error) {
	type alias RedisACL

	return MarshalExtra(alias(a), a.Extra)
}

// RedisACLCreateRequest creates a Redis ACL.
type RedisACLCreateRequest struct {
	Name        string `json:"name" yaml:"name"`
	ACL         string `json:"acl" yaml:"acl"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// RedisACLUpdateRequest updates a Redis ACL. Nil fields are left unchanged.
type RedisACLUpdateRequest struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	ACL         *string `json:"acl,omitempty" yaml:"acl,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// License represents the cluster license.
type License struct {
	License          string   `json:"license,omitempty" yaml:"license,omitempty"`
	Type             string   `json:"type,omitempty" yaml:"type,omitempty"`
	Expired          bool     `json:"expired" yaml:"expired"`
	ActivationDate   string   `json:"activation_date,omitempty" yaml:"activation_date,omitempty"`
	ExpirationDate   string   `json:"expiration_date,omitempty" yaml:"expiration_date,omitempty"`
	ClusterName      string   `json:"cluster_name,omitempty" yaml:"cluster_name,omitempty"`
	Owner            string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	ShardsLimit      uint32   `json:"shards_limit,omitempty" yaml:"shards_limit,omitempty"`
	RAMShardsInUse   uint32   `json:"ram_shards_in_use,omitempty" yaml:"ram_shards_in_use,omitempty"`
	RAMShardsLimit   uint32   `json:"ram_shards_limit,omitempty" yaml:"ram_shards_limit,omitempty"`
	FlashShardsInUse uint32   `json:"flash_shards_in_use,omitempty" yaml:"flash_shards_in_use,omitempty"`
	FlashShardsLimit uint32   `json:"flash_shards_limit,omitempty" yaml:"flash_shards_limit,omitempty"`
	NodeLimit        uint32   `json:"node_limit,omitempty" yaml:"node_limit,omitempty"`
	Features         []string `json:"features,omitempty" yaml:"features,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (l *License) UnmarshalJSON(data []byte) error {
	type alias License

	return UnmarshalExtra(data, (*alias)(l), &l.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (l License) MarshalJSON() ([]byte, error) {
	type alias License

	return MarshalExtra(alias(l), l.Extra)
}

// LicenseUpdateRequest replaces the license key.
type LicenseUpdateRequest struct {
	License string `json:"license" yaml:"license"`
}

// LicenseUsage reports current consumption against the license limits.
type LicenseUsage struct {
	ShardsUsed  uint32 `json:"shards_used" yaml:"shards_used"`
	ShardsLimit uint32 `json:"shards_limit" yaml:"shards_limit"`
	NodesUsed   uint32 `json:"nodes_used" yaml:"nodes_used"`
	NodesLimit  uint32 `json:"nodes_limit" yaml:"nodes_limit"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (u *LicenseUsage) UnmarshalJSON(data []byte) error {
	type alias LicenseUsage

	return UnmarshalExtra(data, (*alias)(u), &u.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (u LicenseUsage) MarshalJSON() ([]byte, error) {
	type alias LicenseUsage

	return MarshalExtra(alias(u), u.Extra)
}

// Module represents a Redis module available on the cluster.
type Module struct {
	UID             string   `json:"uid" yaml:"uid"`
	ModuleName      string   `json:"module_name,omitempty" yaml:"module_name,omitempty"`
	Version         uint32   `json:"version,omitempty" yaml:"version,omitempty"`
	SemanticVersion string   `json:"semantic_version,omitempty" yaml:"semantic_version,omitempty"`
	DisplayName     string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Author          string   `json:"author,omitempty" yaml:"author,omitempty"`
	Email           string   `json:"email,omitempty" yaml:"email,omitempty"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	Homepage        string   `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	License         string   `json:"license,omitempty" yaml:"license,omitempty"`
	Capabilities    []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	CommandLineArgs string   `json:"command_line_args,omitempty" yaml:"command_line_args,omitempty"`
	MinRedisVersion string   `json:"min_redis_version,omitempty" yaml:"min_redis_version,omitempty"`
	IsBundled       *bool    `json:"is_bundled,omitempty" yaml:"is_bundled,omitempty"`
	SHA256          string   `json:"sha256,omitempty" yaml:"sha256,omitempty"`
	Platforms       []string `json:"platforms,omitempty" yaml:"platforms,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (m *Module) UnmarshalJSON(data []byte) error {
	type alias Module

	return UnmarshalExtra(data, (*alias)(m), &m.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (m Module) MarshalJSON() ([]byte, error) {
	type alias Module

	return MarshalExtra(alias(m), m.Extra)
}

// LogEntry is one cluster event. EventType determines which additional
// fields the event carries; those land in Extra.
type LogEntry struct {
	Time      string `json:"time" yaml:"time"`
	EventType string `json:"type" yaml:"type"`
	Severity  string `json:"severity,omitempty" yaml:"severity,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (e *LogEntry) UnmarshalJSON(data []byte) error {
	type alias LogEntry

	return UnmarshalExtra(data, (*alias)(e), &e.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (e LogEntry) MarshalJSON() ([]byte, error) {
	type alias LogEntry

	return MarshalExtra(alias(e), e.Extra)
}

// Action is a long-running cluster task.
type Action struct {
	ActionUID   string   `json:"action_uid" yaml:"action_uid"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty"`
	Progress    *float64 `json:"progress,omitempty" yaml:"progress,omitempty"`
	StartTime   string   `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime     string   `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
	BDBUID      *uint32  `json:"bdb_uid,omitempty" yaml:"bdb_uid,omitempty"`
	NodeUID     *uint32  `json:"node_uid,omitempty" yaml:"node_uid,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (a *Action) UnmarshalJSON(data []byte) error {
	type alias Action

	return UnmarshalExtra(data, (*alias)(a), &a.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (a Action) MarshalJSON() ([]byte, error) {
	type alias Action

	return MarshalExtra(alias(a), a.Extra)
}

// BootstrapStatus reports bootstrap progress on a node.
type BootstrapStatus struct {
	Status   string   `json:"status,omitempty" yaml:"status,omitempty"`
	Progress *float64 `json:"progress,omitempty" yaml:"progress,omitempty"`
	Message  string   `json:"message,omitempty" yaml:"message,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (s *BootstrapStatus) UnmarshalJSON(data []byte) error {
	type alias BootstrapStatus

	return UnmarshalExtra(data, (*alias)(s), &s.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (s BootstrapStatus) MarshalJSON() ([]byte, error) {
	type alias BootstrapStatus

	return MarshalExtra(alias(s), s.Extra)
}

// BootstrapCluster names the cluster being created or joined.
type BootstrapCluster struct {
	Name        string   `json:"name" yaml:"name"`
	DNSSuffixes []string `json:"dns_suffixes,omitempty" yaml:"dns_suffixes,omitempty"`
	RackAware   *bool    `json:"rack_aware,omitempty" yaml:"rack_aware,omitempty"`
}

// BootstrapNodePaths sets storage paths for the bootstrapping node.
type BootstrapNodePaths struct {
	PersistentPath string `json:"persistent_path,omitempty" yaml:"persistent_path,omitempty"`
	EphemeralPath  string `json:"ephemeral_path,omitempty" yaml:"ephemeral_path,omitempty"`
}

// BootstrapNode configures the bootstrapping node.
type BootstrapNode struct {
	Paths *BootstrapNodePaths `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// BootstrapCredentials are the admin credentials for the new cluster.
type BootstrapCredentials struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// BootstrapRequest drives cluster creation or node join. Action is set by
// the client method; callers fill the rest.
type BootstrapRequest struct {
	Action      string                `json:"action,omitempty" yaml:"action,omitempty"`
	Cluster     *BootstrapCluster     `json:"cluster,omitempty" yaml:"cluster,omitempty"`
	Node        *BootstrapNode        `json:"node,omitempty" yaml:"node,omitempty"`
	Credentials *BootstrapCredentials `json:"credentials,omitempty" yaml:"credentials,omitempty"`
}

// StatsInterval is one aggregation bucket of a stats series.
type StatsInterval struct {
	Interval   string                   `json:"interval,omitempty" yaml:"interval,omitempty"`
	STime      string                   `json:"stime,omitempty" yaml:"stime,omitempty"`
	ETime      string                   `json:"etime,omitempty" yaml:"etime,omitempty"`
	Timestamps []int64                  `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
	Values     []map[string]interface{} `json:"values,omitempty" yaml:"values,omitempty"`
}

// StatsResponse is a time-series stats result for one resource.
type StatsResponse struct {
	UID       string          `json:"uid,omitempty" yaml:"uid,omitempty"`
	Intervals []StatsInterval `json:"intervals,omitempty" yaml:"intervals,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (s *StatsResponse) UnmarshalJSON(data []byte) error {
	type alias StatsResponse

	return UnmarshalExtra(data, (*alias)(s), &s.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (s StatsResponse) MarshalJSON() ([]byte, error) {
	type alias StatsResponse

	return MarshalExtra(alias(s), s.Extra)
}

// Shard represents one Redis shard.
type Shard struct {
	UID            string   `json:"uid" yaml:"uid"`
	BDBUID         uint32   `json:"bdb_uid,omitempty" yaml:"bdb_uid,omitempty"`
	NodeUID        string   `json:"node_uid,omitempty" yaml:"node_uid,omitempty"`
	Role           string   `json:"role,omitempty" yaml:"role,omitempty"`
	Status         string   `json:"status,omitempty" yaml:"status,omitempty"`
	Slots          string   `json:"slots,omitempty" yaml:"slots,omitempty"`
	UsedMemory     uint64   `json:"used_memory,omitempty" yaml:"used_memory,omitempty"`
	BackupProgress *float64 `json:"backup_progress,omitempty" yaml:"backup_progress,omitempty"`
	ImportProgress *float64 `json:"import_progress,omitempty" yaml:"import_progress,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (s *Shard) UnmarshalJSON(data []byte) error {
	type alias Shard

	return UnmarshalExtra(data, (*alias)(s), &s.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (s Shard) MarshalJSON() ([]byte, error) {
	type alias Shard

	return MarshalExtra(alias(s), s.Extra)
}

// CRDB represents an Active-Active database replicated across clusters.
// Unlike regular databases, CRDBs key on a string GUID.
type CRDB struct {
	GUID            string         `json:"guid" yaml:"guid"`
	Name            string         `json:"name" yaml:"name"`
	Status          string         `json:"status,omitempty" yaml:"status,omitempty"`
	MemorySize      uint64         `json:"memory_size,omitempty" yaml:"memory_size,omitempty"`
	Instances       []CRDBInstance `json:"instances,omitempty" yaml:"instances,omitempty"`
	Encryption      *bool          `json:"encryption,omitempty" yaml:"encryption,omitempty"`
	Replication     *bool          `json:"replication,omitempty" yaml:"replication,omitempty"`
	DataPersistence string         `json:"data_persistence,omitempty" yaml:"data_persistence,omitempty"`
	EvictionPolicy  string         `json:"eviction_policy,omitempty" yaml:"eviction_policy,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (c *CRDB) UnmarshalJSON(data []byte) error {
	type alias CRDB

	return UnmarshalExtra(data, (*alias)(c), &c.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (c CRDB) MarshalJSON() ([]byte, error) {
	type alias CRDB

	return MarshalExtra(alias(c), c.Extra)
}

// CRDBInstance is one participating cluster within an Active-Active
// database.
type CRDBInstance struct {
	ID          uint32   `json:"id" yaml:"id"`
	Cluster     string   `json:"cluster" yaml:"cluster"`
	ClusterName string   `json:"cluster_name,omitempty" yaml:"cluster_name,omitempty"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty"`
	Endpoints   []string `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (i *CRDBInstance) UnmarshalJSON(data []byte) error {
	type alias CRDBInstance

	return UnmarshalExtra(data, (*alias)(i), &i.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (i CRDBInstance) MarshalJSON() ([]byte, error) {
	type alias CRDBInstance

	return MarshalExtra(alias(i), i.Extra)
}

// CRDBInstanceSpec names a participating cluster when creating an
// Active-Active database.
type CRDBInstanceSpec struct {
	Cluster    string `json:"cluster" yaml:"cluster"`
	ClusterURL string `json:"cluster_url,omitempty" yaml:"cluster_url,omitempty"`
	Username   string `json:"username,omitempty" yaml:"username,omitempty"`
	Password   string `json:"password,omitempty" yaml:"password,omitempty"`
}

// CRDBCreateRequest creates an Active-Active database. Name, MemorySize,
// and at least two Instances are required.
type CRDBCreateRequest struct {
	Name            string             `json:"name" yaml:"name"`
	MemorySize      uint64             `json:"memory_size" yaml:"memory_size"`
	Instances       []CRDBInstanceSpec `json:"instances" yaml:"instances"`
	Encryption      *bool              `json:"encryption,omitempty" yaml:"encryption,omitempty"`
	DataPersistence string             `json:"data_persistence,omitempty" yaml:"data_persistence,omitempty"`
	EvictionPolicy  string             `json:"eviction_policy,omitempty" yaml:"eviction_policy,omitempty"`
}

// CRDBUpdateRequest updates an Active-Active database. Nil fields are left
// unchanged.
type CRDBUpdateRequest struct {
	MemorySize      *uint64 `json:"memory_size,omitempty" yaml:"memory_size,omitempty"`
	Encryption      *bool   `json:"encryption,omitempty" yaml:"encryption,omitempty"`
	DataPersistence *string `json:"data_persistence,omitempty" yaml:"data_persistence,omitempty"`
	EvictionPolicy  *string `json:"eviction_policy,omitempty" yaml:"eviction_policy,omitempty"`
}

// CRDBTask is one asynchronous operation against an Active-Active
// database.
type CRDBTask struct {
	TaskID    string   `json:"task_id" yaml:"task_id"`
	CRDBGUID  string   `json:"crdb_guid" yaml:"crdb_guid"`
	TaskType  string   `json:"task_type" yaml:"task_type"`
	Status    string   `json:"status,omitempty" yaml:"status,omitempty"`
	Progress  *float64 `json:"progress,omitempty" yaml:"progress,omitempty"`
	StartTime string   `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string   `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (t *CRDBTask) UnmarshalJSON(data []byte) error {
	type alias CRDBTask

	return UnmarshalExtra(data, (*alias)(t), &t.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (t CRDBTask) MarshalJSON() ([]byte, error) {
	type alias CRDBTask

	return MarshalExtra(alias(t), t.Extra)
}

// CRDBTaskCreateRequest starts a task against an Active-Active database,
// e.g. a cross-instance flush or purge.
type CRDBTaskCreateRequest struct {
	CRDBGUID string                 `json:"crdb_guid" yaml:"crdb_guid"`
	TaskType string                 `json:"task_type" yaml:"task_type"`
	Params   map[string]interface{} `json:"params,omitempty" yaml:"params,omitempty"`
}

// DiagnosticCheckRequest selects which diagnostic checks run and against
// which resources. Empty fields widen the run: no checks means every check,
// no UIDs means every node and database.
type DiagnosticCheckRequest struct {
	Checks   []string `json:"checks,omitempty" yaml:"checks,omitempty"`
	NodeUIDs []uint32 `json:"node_uids,omitempty" yaml:"node_uids,omitempty"`
	BDBUIDs  []uint32 `json:"bdb_uids,omitempty" yaml:"bdb_uids,omitempty"`
}

// DiagnosticResult is one check's outcome: status is pass, warning, or
// fail.
type DiagnosticResult struct {
	CheckName       string   `json:"check_name" yaml:"check_name"`
	Status          string   `json:"status" yaml:"status"`
	Message         string   `json:"message,omitempty" yaml:"message,omitempty"`
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (r *DiagnosticResult) UnmarshalJSON(data []byte) error {
	type alias DiagnosticResult

	return UnmarshalExtra(data, (*alias)(r), &r.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (r DiagnosticResult) MarshalJSON() ([]byte, error) {
	type alias DiagnosticResult

	return MarshalExtra(alias(r), r.Extra)
}

// DiagnosticSummary totals the results of one diagnostic run.
type DiagnosticSummary struct {
	TotalChecks uint32 `json:"total_checks" yaml:"total_checks"`
	Passed      uint32 `json:"passed" yaml:"passed"`
	Warnings    uint32 `json:"warnings" yaml:"warnings"`
	Failures    uint32 `json:"failures" yaml:"failures"`
}

// DiagnosticReport is the persisted result of one diagnostic run.
type DiagnosticReport struct {
	ReportID  string             `json:"report_id" yaml:"report_id"`
	Timestamp string             `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Results   []DiagnosticResult `json:"results,omitempty" yaml:"results,omitempty"`
	Summary   *DiagnosticSummary `json:"summary,omitempty" yaml:"summary,omitempty"`

	Extra Extra `json:"-" yaml:"extra,omitempty"`
}

// UnmarshalJSON captures unmodeled fields into Extra.
func (r *DiagnosticReport) UnmarshalJSON(data []byte) error {
	type alias DiagnosticReport

	return UnmarshalExtra(data, (*alias)(r), &r.Extra)
}

// MarshalJSON writes Extra fields back alongside the modeled ones.
func (r DiagnosticReport) MarshalJSON() ([]byte, error) {
	type alias DiagnosticReport

	return MarshalExtra(alias(r), r.Extra)
}
