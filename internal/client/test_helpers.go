package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// NewTestClient creates a client pointed at a test server.
func NewTestClient(baseURL string) *Client {
	return New(&enterprise.Config{
		BaseURL:  baseURL,
		Username: "admin@test.example",
		Password: "secret",
	})
}

// testServerCall records what the fake cluster saw for one request.
type testServerCall struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// testServer is a fake cluster endpoint that records every call and replays
// one canned response.
type testServer struct {
	*httptest.Server

	calls  atomic.Int64
	last   atomic.Pointer[testServerCall]
	status int
	body   interface{}
}

// newTestServer starts a fake cluster that answers every request with the
// given status and JSON body. A nil body sends an empty response.
func newTestServer(t *testing.T, status int, body interface{}) *testServer {
	t.Helper()

	server := &testServer{status: status, body: body}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		call := &testServerCall{
			Method: request.Method,
			Path:   request.URL.EscapedPath(),
			Query:  request.URL.RawQuery,
		}

		data, err := io.ReadAll(request.Body)
		require.NoError(t, err)
		call.Body = data

		server.last.Store(call)
		server.calls.Add(1)

		if server.body != nil {
			writer.Header().Set("Content-Type", "application/json")
		}

		writer.WriteHeader(server.status)

		if server.body != nil {
			_ = json.NewEncoder(writer).Encode(server.body)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// Client returns a client wired to this server.
func (s *testServer) Client() *Client {
	return NewTestClient(s.URL)
}

// Calls returns how many requests the server has seen.
func (s *testServer) Calls() int {
	return int(s.calls.Load())
}

// LastCall returns the most recent request, failing the test when the server
// was never hit.
func (s *testServer) LastCall(t *testing.T) *testServerCall {
	t.Helper()

	call := s.last.Load()
	require.NotNil(t, call, "server received no requests")

	return call
}

// newBlockingServer starts a server that signals entered once per request
// and holds every response until release closes.
func newBlockingServer(release <-chan struct{}, entered chan<- struct{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		entered <- struct{}{}
		<-release
		writer.WriteHeader(http.StatusOK)
	}))
}

// AssertCalled checks the method and path of the most recent request.
func (s *testServer) AssertCalled(t *testing.T, method, path string) {
	t.Helper()

	call := s.LastCall(t)
	assert.Equal(t, method, call.Method)
	assert.Equal(t, path, call.Path)
}
