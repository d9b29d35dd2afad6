package enterprise

import (
	"time"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the cluster management endpoint, e.g. "https://cluster:9443".
	// A URL without a scheme defaults to https.
	BaseURL string

	// Username and Password are sent as HTTP basic auth on every request.
	Username string
	Password string

	// Timeout bounds each request end to end. Zero means the default of
	// 30 seconds. A context deadline shorter than this wins.
	Timeout time.Duration

	// Insecure skips TLS certificate verification. Off by default; clusters
	// commonly run with self-signed certificates, so operators opt in
	// explicitly.
	Insecure bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// RetryMax enables transport-level retries for idempotent requests when
	// set above zero. The default of zero performs exactly one attempt per
	// call; retry policy belongs to the caller.
	RetryMax int

	// HTTPTimeout bounds the underlying transport independently of Timeout.
	// Rarely needed; zero uses Timeout.
	HTTPTimeout time.Duration

	// Logger receives debug-level request/response logs. Nil disables all
	// logging output.
	Logger Logger

	// Interceptors run around every request in registration order. Nil
	// disables interception.
	Interceptors *InterceptorChain
}

// Logger is a pluggable logging interface. Implementations adapt whatever
// logging library the host application uses.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NoopLogger discards all log output. It is the default when Config.Logger
// is nil.
type NoopLogger struct{}

// Debug implements Logger.
func (NoopLogger) Debug(string, map[string]interface{}) {}

// Info implements Logger.
func (NoopLogger) Info(string, map[string]interface{}) {}

// Warn implements Logger.
func (NoopLogger) Warn(string, map[string]interface{}) {}

// Error implements Logger.
func (NoopLogger) Error(string, map[string]interface{}) {}
