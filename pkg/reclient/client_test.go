package reclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
	"github.com/redisops-io/enterprise-go/pkg/reclient"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      *enterprise.Config
		expectedErr error
	}{
		{
			name:        "nil config",
			config:      nil,
			expectedErr: enterprise.ErrConfigRequired,
		},
		{
			name:        "missing base URL",
			config:      &enterprise.Config{Username: "admin@example.com", Password: "secret"},
			expectedErr: enterprise.ErrBaseURLRequired,
		},
		{
			name:        "missing username",
			config:      &enterprise.Config{BaseURL: "https://cluster:9443", Password: "secret"},
			expectedErr: enterprise.ErrCredentialsRequired,
		},
		{
			name:        "missing password",
			config:      &enterprise.Config{BaseURL: "https://cluster:9443", Username: "admin@example.com"},
			expectedErr: enterprise.ErrCredentialsRequired,
		},
		{
			name: "unparseable base URL",
			config: &enterprise.Config{
				BaseURL:  "https://invalid url with spaces",
				Username: "admin@example.com",
				Password: "secret",
			},
			expectedErr: enterprise.ErrInvalidBaseURL,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, err := reclient.New(testCase.config)
			require.Error(t, err)
			assert.ErrorIs(t, err, testCase.expectedErr)
			assert.Nil(t, client)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew_URLNormalization(t *testing.T) {
	t.Parallel()

	t.Run("caller config is not mutated", func(t *testing.T) {
		t.Parallel()

		baseURLs := []string{
			"https://cluster:9443/",
			"cluster:9443",
			"http://cluster:8080",
		}

		for _, baseURL := range baseURLs {
			config := &enterprise.Config{
				BaseURL:  baseURL,
				Username: "admin@example.com",
				Password: "secret",
			}

			client, err := reclient.New(config)
			require.NoError(t, err)
			require.NotNil(t, client)
			assert.Equal(t, baseURL, config.BaseURL)
		}
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/cluster", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]string{"name": "prod-cluster"})
		}))
		defer server.Close()

		client, err := reclient.New(&enterprise.Config{
			BaseURL:  server.URL + "/",
			Username: "admin@example.com",
			Password: "secret",
		})
		require.NoError(t, err)

		info, err := client.Cluster().Info(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "prod-cluster", info.Name)
	})

	t.Run("missing scheme defaults to https", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/cluster", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]string{"name": "prod-cluster"})
		}))
		defer server.Close()

		client, err := reclient.New(&enterprise.Config{
			BaseURL:  strings.TrimPrefix(server.URL, "https://"),
			Username: "admin@example.com",
			Password: "secret",
			Insecure: true,
		})
		require.NoError(t, err)

		info, err := client.Cluster().Info(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "prod-cluster", info.Name)
	})
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/cluster", request.URL.Path)

		username, password, ok := request.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin@example.com", username)
		assert.Equal(t, "secret", password)

		_ = json.NewEncoder(writer).Encode(map[string]string{"name": "prod-cluster"})
	}))
	defer server.Close()

	client, err := reclient.NewWithPassword(server.URL, "admin@example.com", "secret")
	require.NoError(t, err)

	info, err := client.Cluster().Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "prod-cluster", info.Name)
}

func TestFromEnv(t *testing.T) {
	t.Run("builds a client from the environment", func(t *testing.T) {
		t.Setenv(reclient.EnvURL, "https://cluster:9443")
		t.Setenv(reclient.EnvUser, "admin@example.com")
		t.Setenv(reclient.EnvPassword, "secret")
		t.Setenv(reclient.EnvInsecure, "true")

		client, err := reclient.FromEnv()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("missing variables fail validation", func(t *testing.T) {
		t.Setenv(reclient.EnvURL, "")
		t.Setenv(reclient.EnvUser, "")
		t.Setenv(reclient.EnvPassword, "")

		client, err := reclient.FromEnv()
		require.Error(t, err)
		assert.Nil(t, client)
	})
}
