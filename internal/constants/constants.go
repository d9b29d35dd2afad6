package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// DebugPackagePerm is the permission for downloaded debug packages.
	DebugPackagePerm = 0600
)

// HTTP and network defaults.
const (
	// DefaultHTTPTimeout is the default timeout for API requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for long operations such as module
	// upload and debug-package download.
	ExtendedHTTPTimeout = 5 * time.Minute

	// DefaultAPIPort is the cluster management HTTPS port.
	DefaultAPIPort = 9443

	// DefaultUserAgent identifies this library on the wire.
	DefaultUserAgent = "enterprise-go"
)

// Retry limits for the opt-in transport retry policy.
const (
	// DefaultRetryWaitMin is the minimum wait between transport retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between transport retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API path prefixes.
const (
	// APIv1 is the stable API prefix.
	APIv1 = "/v1"

	// APIv2 is the newer prefix available for select resources.
	APIv2 = "/v2"
)
