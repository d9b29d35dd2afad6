// Package reclient provides the main entry point for creating Redis
// Enterprise cluster management clients.
package reclient

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/redisops-io/enterprise-go/internal/client"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// Environment variables read by FromEnv.
const (
	EnvURL      = "REDIS_ENTERPRISE_URL"
	EnvUser     = "REDIS_ENTERPRISE_USER"
	EnvPassword = "REDIS_ENTERPRISE_PASSWORD"
	EnvInsecure = "REDIS_ENTERPRISE_INSECURE"
)

// New creates a Redis Enterprise API client. The config is validated and the
// base URL normalized before any request is made: a trailing slash is
// trimmed and a missing scheme defaults to https.
func New(config *enterprise.Config) (enterprise.Client, error) {
	if config == nil {
		return nil, enterprise.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, enterprise.ErrBaseURLRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, enterprise.ErrCredentialsRequired
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", enterprise.ErrInvalidBaseURL, config.BaseURL)
	}

	// Normalize on a copy so the caller's config is left untouched.
	cfg := *config
	cfg.BaseURL = baseURL

	return client.New(&cfg), nil
}

// NewWithPassword creates a client from the cluster URL and basic auth
// credentials.
func NewWithPassword(clusterURL, username, password string) (enterprise.Client, error) {
	return New(&enterprise.Config{
		BaseURL:  clusterURL,
		Username: username,
		Password: password,
	})
}

// FromEnv creates a client from the REDIS_ENTERPRISE_* environment
// variables.
func FromEnv() (enterprise.Client, error) {
	insecure := os.Getenv(EnvInsecure)

	return New(&enterprise.Config{
		BaseURL:  os.Getenv(EnvURL),
		Username: os.Getenv(EnvUser),
		Password: os.Getenv(EnvPassword),
		Insecure: insecure == "true" || insecure == "1",
	})
}
