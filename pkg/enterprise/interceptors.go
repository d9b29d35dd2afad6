package enterprise

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// RequestInfo describes an outgoing API request as seen by interceptors.
// Interceptors may mutate Headers and Metadata; Method, Path, and Body are
// informational.
type RequestInfo struct {
	Method   string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// ResponseInfo describes the outcome of a request as seen by response
// interceptors. Error is set for transport failures, in which case
// StatusCode is zero.
type ResponseInfo struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor runs before a request is sent. Returning an error
// aborts the request.
type RequestInterceptor func(ctx context.Context, req *RequestInfo) error

// ResponseInterceptor runs after a response (or transport error) is
// received.
type ResponseInterceptor func(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error

// InterceptorChain holds ordered request and response interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs the request interceptors in order,
// stopping at the first error. Nil-safe.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *RequestInfo) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.requestInterceptors {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response interceptors in order,
// stopping at the first error. Nil-safe.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.responseInterceptors {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs each outgoing request at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *RequestInfo) error {
		logger.Debug("api request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs each response, at error level for
// transport failures and debug level otherwise.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *RequestInfo, resp *ResponseInfo) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("api request failed", fields)
		} else {
			logger.Debug("api response", fields)
		}

		return nil
	}
}

// HeaderInterceptor sets fixed headers on every request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *RequestInfo) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// RateLimitInterceptor applies client-side rate limiting with a token
// bucket of the given sustained rate. Blocked requests honor context
// cancellation.
func RateLimitInterceptor(requestsPerSecond int) RequestInterceptor {
	bucket := make(chan struct{}, requestsPerSecond)
	for i := 0; i < requestsPerSecond; i++ {
		bucket <- struct{}{}
	}

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(requestsPerSecond))
		defer ticker.Stop()

		for range ticker.C {
			select {
			case bucket <- struct{}{}:
			default:
			}
		}
	}()

	return func(ctx context.Context, _ *RequestInfo) error {
		select {
		case <-bucket:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("rate limit wait: %w", ctx.Err())
		}
	}
}

// EndpointMetrics aggregates call statistics for one method+path endpoint.
type EndpointMetrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector aggregates per-endpoint call metrics. Safe for
// concurrent use.
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*EndpointMetrics
	onChange func(endpoint string, metrics EndpointMetrics)
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*EndpointMetrics),
	}
}

// SetOnChange registers a callback invoked with a snapshot after every
// recorded response.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics EndpointMetrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Metrics returns a snapshot for an endpoint key ("METHOD path"), or false
// when the endpoint has never been called.
func (m *MetricsCollector) Metrics(endpoint string) (EndpointMetrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		return EndpointMetrics{}, false
	}

	return *metrics, true
}

// MetricsRequestInterceptor stamps the request start time for latency
// accounting.
func MetricsRequestInterceptor(*MetricsCollector) RequestInterceptor {
	return func(_ context.Context, req *RequestInfo) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata["start_time"] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records request counts, errors, and latency.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(_ context.Context, req *RequestInfo, resp *ResponseInfo) error {
		endpoint := fmt.Sprintf("%s %s", req.Method, req.Path)

		collector.mu.Lock()

		metrics, ok := collector.metrics[endpoint]
		if !ok {
			metrics = &EndpointMetrics{}
			collector.metrics[endpoint] = metrics
		}

		metrics.TotalRequests++
		metrics.LastRequestTime = time.Now()

		if startTime, ok := req.Metadata["start_time"].(time.Time); ok {
			metrics.TotalLatency += time.Since(startTime)
			metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
		}

		if resp.Error != nil || resp.StatusCode >= http.StatusBadRequest {
			metrics.TotalErrors++
		}

		snapshot := *metrics
		onChange := collector.onChange

		collector.mu.Unlock()

		if onChange != nil {
			onChange(endpoint, snapshot)
		}

		return nil
	}
}

type circuitState int

const (
	circuitClosed circuitState = iota
	circuitOpen
	circuitHalfOpen
)

// CircuitBreakerConfig tunes the breaker thresholds.
type CircuitBreakerConfig struct {
	// Threshold is the consecutive-failure count that opens the circuit.
	Threshold int
	// Timeout is how long the circuit stays open before a probe is allowed.
	Timeout time.Duration
	// SuccessThreshold is the probe-success count that closes the circuit.
	SuccessThreshold int
}

// CircuitBreaker trips after repeated server failures so callers fail fast
// instead of piling requests onto a struggling cluster. Safe for concurrent
// use.
type CircuitBreaker struct {
	mu          sync.Mutex
	config      CircuitBreakerConfig
	failures    int
	successes   int
	state       circuitState
	lastFailure time.Time
}

// NewCircuitBreaker creates a breaker. A nil config uses 5 failures to
// open, a 30 second open window, and 2 probe successes to close.
func NewCircuitBreaker(config *CircuitBreakerConfig) *CircuitBreaker {
	if config == nil {
		config = &CircuitBreakerConfig{
			Threshold:        5,
			Timeout:          30 * time.Second,
			SuccessThreshold: 2,
		}
	}

	return &CircuitBreaker{config: *config}
}

// CircuitBreakerRequestInterceptor rejects requests while the circuit is
// open.
func CircuitBreakerRequestInterceptor(breaker *CircuitBreaker) RequestInterceptor {
	return func(_ context.Context, _ *RequestInfo) error {
		breaker.mu.Lock()
		defer breaker.mu.Unlock()

		if breaker.state == circuitOpen {
			if time.Since(breaker.lastFailure) <= breaker.config.Timeout {
				return ErrCircuitBreakerOpen
			}

			breaker.state = circuitHalfOpen
			breaker.successes = 0
		}

		return nil
	}
}

// CircuitBreakerResponseInterceptor feeds request outcomes back into the
// breaker. Transport errors and 5xx responses count as failures.
func CircuitBreakerResponseInterceptor(breaker *CircuitBreaker) ResponseInterceptor {
	return func(_ context.Context, _ *RequestInfo, resp *ResponseInfo) error {
		breaker.mu.Lock()
		defer breaker.mu.Unlock()

		if resp.Error != nil || resp.StatusCode >= http.StatusInternalServerError {
			breaker.failures++
			breaker.lastFailure = time.Now()

			if breaker.state == circuitHalfOpen || breaker.failures >= breaker.config.Threshold {
				breaker.state = circuitOpen
			}

			return nil
		}

		switch breaker.state {
		case circuitHalfOpen:
			breaker.successes++
			if breaker.successes >= breaker.config.SuccessThreshold {
				breaker.state = circuitClosed
				breaker.failures = 0
			}
		case circuitClosed:
			breaker.failures = 0
		case circuitOpen:
		}

		return nil
	}
}
