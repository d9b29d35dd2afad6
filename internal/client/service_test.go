package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

func newTestServiceAdapter(t *testing.T, server *testServer, maxInFlight int) *ServiceAdapter {
	t.Helper()

	httpClient := internalhttp.NewClient(&enterprise.Config{
		BaseURL:  server.URL,
		Username: "admin@test.example",
		Password: "secret",
	})

	return NewServiceAdapter(httpClient, maxInFlight)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestServiceAdapter_Call(t *testing.T) {
	t.Parallel()

	t.Run("get round trip", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, map[string]string{"name": "prod-cluster"})
		service := newTestServiceAdapter(t, server, 0)

		resp, err := service.Call(context.Background(), enterprise.NewServiceRequest("GET", "/v1/cluster"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)

		var body map[string]string

		require.NoError(t, json.Unmarshal(resp.Body, &body))
		assert.Equal(t, "prod-cluster", body["name"])
	})

	t.Run("post with body", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, map[string]string{"action_uid": "act-1"})
		service := newTestServiceAdapter(t, server, 0)

		request := enterprise.NewServiceRequest("POST", "/v1/bdbs/1/actions/export").
			WithBody(json.RawMessage(`{}`))

		resp, err := service.Call(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		server.AssertCalled(t, "POST", "/v1/bdbs/1/actions/export")
	})

	t.Run("post without body never reaches the server", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil)
		service := newTestServiceAdapter(t, server, 0)

		resp, err := service.Call(context.Background(), enterprise.NewServiceRequest("POST", "/v1/bdbs"))
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, enterprise.IsValidation(err))
		assert.Equal(t, 0, server.Calls())
	})

	t.Run("put and patch without body fail the same way", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil)
		service := newTestServiceAdapter(t, server, 0)

		for _, method := range []string{"PUT", "PATCH"} {
			_, err := service.Call(context.Background(), enterprise.NewServiceRequest(method, "/v1/cluster"))
			require.Error(t, err)
			assert.True(t, enterprise.IsValidation(err))
		}

		assert.Equal(t, 0, server.Calls())
	})

	t.Run("unsupported method", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil)
		service := newTestServiceAdapter(t, server, 0)

		_, err := service.Call(context.Background(), enterprise.NewServiceRequest("TRACE", "/v1/cluster"))
		require.Error(t, err)
		assert.True(t, enterprise.IsValidation(err))
		assert.Equal(t, 0, server.Calls())
	})

	t.Run("api errors carry the taxonomy", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusNotFound, map[string]string{"error_code": "db_not_exist"})
		service := newTestServiceAdapter(t, server, 0)

		resp, err := service.Call(context.Background(), enterprise.NewServiceRequest("GET", "/v1/bdbs/99"))
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, enterprise.IsNotFound(err))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestServiceAdapter_Ready(t *testing.T) {
	t.Parallel()

	t.Run("unbounded adapter is always ready", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil)
		service := newTestServiceAdapter(t, server, 0)

		require.NoError(t, service.Ready(context.Background()))
	})

	t.Run("bounded adapter reports busy at the bound", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		entered := make(chan struct{}, 2)

		server := newBlockingServer(release, entered)
		t.Cleanup(server.Close)

		service := NewServiceAdapter(internalhttp.NewClient(&enterprise.Config{
			BaseURL:  server.URL,
			Username: "admin@test.example",
			Password: "secret",
		}), 2)

		var group sync.WaitGroup

		for i := 0; i < 2; i++ {
			group.Add(1)

			go func() {
				defer group.Done()

				_, _ = service.Call(context.Background(), enterprise.NewServiceRequest("GET", "/v1/cluster"))
			}()
		}

		// Wait until both calls hold a slot.
		<-entered
		<-entered

		err := service.Ready(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, enterprise.ErrServiceBusy)

		close(release)
		group.Wait()

		require.NoError(t, service.Ready(context.Background()))
	})
}

func TestServiceDecorators(t *testing.T) {
	t.Parallel()

	t.Run("timeout decorator bounds slow calls", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)

		entered := make(chan struct{}, 1)
		server := newBlockingServer(release, entered)
		t.Cleanup(server.Close)

		inner := NewServiceAdapter(internalhttp.NewClient(&enterprise.Config{
			BaseURL:  server.URL,
			Username: "admin@test.example",
			Password: "secret",
		}), 0)

		service := enterprise.ServiceWithTimeout(inner, 50*time.Millisecond)

		start := time.Now()
		_, err := service.Call(context.Background(), enterprise.NewServiceRequest("GET", "/v1/cluster"))
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}
