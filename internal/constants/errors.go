package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoClusterConfigured = errors.New("no cluster configured, set --url or REDIS_ENTERPRISE_URL")
	ErrNoCredentials       = errors.New("no credentials configured, run 'recctl login' or set REDIS_ENTERPRISE_USER and REDIS_ENTERPRISE_PASSWORD")
	ErrUnknownOutputFormat = errors.New("unknown output format, expected table, json, or yaml")
)
