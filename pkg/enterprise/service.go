package enterprise

import (
	"context"
	"encoding/json"
	"time"
)

// ServiceRequest is the generic request shape for the service adapter: a
// method, an API path, and an optional raw JSON body. It lets the client sit
// behind transport-agnostic middleware stacks that know nothing about the
// typed resource clients.
type ServiceRequest struct {
	Method string          `json:"method"`
	Path   string          `json:"path"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// NewServiceRequest creates a request with no body.
func NewServiceRequest(method, path string) ServiceRequest {
	return ServiceRequest{Method: method, Path: path}
}

// WithBody returns a copy of the request carrying body.
func (r ServiceRequest) WithBody(body json.RawMessage) ServiceRequest {
	r.Body = body

	return r
}

// ServiceResponse is the generic response shape: the HTTP status and the
// raw response body. Non-2xx statuses never reach a ServiceResponse; they
// surface as *APIError from Call.
type ServiceResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// Service is the generic call surface over the client. Implementations
// validate requests before any network I/O: a POST, PUT, or PATCH without a
// body fails with a validation-kind *APIError and the server is never
// contacted.
type Service interface {
	// Ready reports whether the service can accept a call right now.
	// An unbounded service is always ready.
	Ready(ctx context.Context) error

	// Call performs one request. Errors use the same taxonomy as the typed
	// clients.
	Call(ctx context.Context, req ServiceRequest) (*ServiceResponse, error)
}

type timeoutService struct {
	inner   Service
	timeout time.Duration
}

// ServiceWithTimeout wraps a service so every call carries a deadline. A
// caller-supplied deadline that is already shorter stays in effect.
func ServiceWithTimeout(inner Service, timeout time.Duration) Service {
	return &timeoutService{inner: inner, timeout: timeout}
}

func (s *timeoutService) Ready(ctx context.Context) error {
	return s.inner.Ready(ctx)
}

func (s *timeoutService) Call(ctx context.Context, req ServiceRequest) (*ServiceResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.inner.Call(ctx, req)
}

type bufferedService struct {
	inner Service
	sem   chan struct{}
}

// ServiceWithBuffer wraps a service with a bound of size concurrent calls.
// Calls past the bound block until a slot frees or the context is done;
// Ready reports busy while all slots are taken.
func ServiceWithBuffer(inner Service, size int) Service {
	return &bufferedService{inner: inner, sem: make(chan struct{}, size)}
}

func (s *bufferedService) Ready(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		<-s.sem

		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrServiceBusy
	}
}

func (s *bufferedService) Call(ctx context.Context, req ServiceRequest) (*ServiceResponse, error) {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ConnectionError(ctx.Err())
	}
	defer func() { <-s.sem }()

	return s.inner.Call(ctx, req)
}
