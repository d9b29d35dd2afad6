package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// ServiceAdapter implements enterprise.Service over the HTTP chokepoint.
// The zero in-flight bound means unbounded: Ready always reports ready.
type ServiceAdapter struct {
	httpClient *http.Client
	sem        chan struct{}
}

// NewServiceAdapter creates a service adapter. maxInFlight of zero leaves
// the adapter unbounded.
func NewServiceAdapter(httpClient *http.Client, maxInFlight int) *ServiceAdapter {
	adapter := &ServiceAdapter{httpClient: httpClient}
	if maxInFlight > 0 {
		adapter.sem = make(chan struct{}, maxInFlight)
	}

	return adapter
}

// Ready reports whether a call can start right now.
func (s *ServiceAdapter) Ready(ctx context.Context) error {
	if s.sem == nil {
		return nil
	}

	select {
	case s.sem <- struct{}{}:
		<-s.sem

		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return enterprise.ErrServiceBusy
	}
}

var allowedServiceMethods = map[string]bool{
	nethttp.MethodGet:    true,
	nethttp.MethodPost:   true,
	nethttp.MethodPut:    true,
	nethttp.MethodPatch:  true,
	nethttp.MethodDelete: true,
}

var bodyRequiredMethods = map[string]bool{
	nethttp.MethodPost:  true,
	nethttp.MethodPut:   true,
	nethttp.MethodPatch: true,
}

// Call performs one generic request. Requests that cannot be valid — an
// unsupported method, or a body-carrying method without a body — fail
// before any network I/O.
func (s *ServiceAdapter) Call(ctx context.Context, req enterprise.ServiceRequest) (*enterprise.ServiceResponse, error) {
	if !allowedServiceMethods[req.Method] {
		return nil, enterprise.ValidationError(fmt.Sprintf("unsupported method %q", req.Method))
	}

	if bodyRequiredMethods[req.Method] && len(req.Body) == 0 {
		return nil, enterprise.ValidationError(fmt.Sprintf("%s %s requires a request body", req.Method, req.Path))
	}

	if s.sem != nil {
		select {
		case s.sem <- struct{}{}:
		case <-ctx.Done():
			return nil, enterprise.ConnectionError(ctx.Err())
		}
		defer func() { <-s.sem }()
	}

	httpReq := &http.Request{
		Method: req.Method,
		Path:   req.Path,
	}
	if len(req.Body) > 0 {
		httpReq.Body = json.RawMessage(req.Body)
	}

	resp, err := s.httpClient.Do(ctx, httpReq)
	if err != nil {
		return nil, err
	}

	return &enterprise.ServiceResponse{
		Status: resp.StatusCode,
		Body:   resp.Body,
	}, nil
}
