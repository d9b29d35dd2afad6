// Package http implements the single authenticated chokepoint through which
// every API request flows: auth, encoding, timeouts, status classification,
// and interceptors all live here.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/redisops-io/enterprise-go/internal/constants"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// Request describes one API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	// Body is JSON-encoded when non-nil.
	Body interface{}
}

// Response is the raw outcome of a successful (2xx) request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the authenticated HTTP chokepoint. Safe for concurrent use; it
// holds no per-request state.
type Client struct {
	baseURL      string
	username     string
	password     string
	userAgent    string
	timeout      time.Duration
	httpClient   *http.Client
	logger       enterprise.Logger
	interceptors *enterprise.InterceptorChain
}

// NewClient builds the chokepoint from a validated config. Credentials are
// attached per request as basic auth; nothing is persisted between calls.
func NewClient(config *enterprise.Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = config.RetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil

	if config.Insecure {
		transport := retryClient.HTTPClient.Transport
		if base, ok := transport.(*http.Transport); ok {
			cloned := base.Clone()
			cloned.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // explicit operator opt-in
			retryClient.HTTPClient.Transport = cloned
		} else {
			retryClient.HTTPClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // explicit operator opt-in
			}
		}
	}

	httpClient := retryClient.StandardClient()

	httpTimeout := config.HTTPTimeout
	if httpTimeout == 0 {
		httpTimeout = timeout
	}

	httpClient.Timeout = httpTimeout

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	var logger enterprise.Logger = enterprise.NoopLogger{}
	if config.Logger != nil {
		logger = config.Logger
	}

	return &Client{
		baseURL:      strings.TrimSuffix(config.BaseURL, "/"),
		username:     config.Username,
		password:     config.Password,
		userAgent:    userAgent,
		timeout:      timeout,
		httpClient:   httpClient,
		logger:       logger,
		interceptors: config.Interceptors,
	}
}

// Do performs one request. Non-2xx responses never produce a Response; they
// come back as a classified *enterprise.APIError. Exactly one error per
// failed call.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var bodyBytes []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &enterprise.APIError{
				Kind:   enterprise.ErrorKindValidation,
				Detail: fmt.Sprintf("encoding request body: %v", err),
				Err:    err,
			}
		}

		bodyBytes = encoded
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if bodyBytes != nil {
		reader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, reader)
	if err != nil {
		return nil, enterprise.ConnectionError(err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if bodyBytes != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	return c.send(ctx, httpReq, req.Path, bodyBytes)
}

// send finishes a prepared request: auth, interceptors, transport, status
// classification. Shared by Do, GetBinary, and PostMultipart.
func (c *Client) send(ctx context.Context, httpReq *http.Request, path string, body []byte) (*Response, error) {
	httpReq.SetBasicAuth(c.username, c.password)
	httpReq.Header.Set("User-Agent", c.userAgent)

	info := &enterprise.RequestInfo{
		Method:  httpReq.Method,
		Path:    path,
		Headers: httpReq.Header,
		Body:    body,
	}

	if err := c.interceptors.ExecuteRequestInterceptors(ctx, info); err != nil {
		return nil, err
	}

	c.logger.Debug("api request", map[string]interface{}{
		"method": httpReq.Method,
		"path":   path,
	})

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		connErr := enterprise.ConnectionError(err)
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, info, &enterprise.ResponseInfo{Error: connErr})

		return nil, connErr
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		connErr := enterprise.ConnectionError(err)
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, info, &enterprise.ResponseInfo{Error: connErr})

		return nil, connErr
	}

	respInfo := &enterprise.ResponseInfo{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}
	if err := c.interceptors.ExecuteResponseInterceptors(ctx, info, respInfo); err != nil {
		return nil, err
	}

	c.logger.Debug("api response", map[string]interface{}{
		"method":      httpReq.Method,
		"path":        path,
		"status_code": httpResp.StatusCode,
	})

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return nil, enterprise.ClassifyResponse(httpResp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// decode unmarshals a response body into out. A 204 or empty body leaves
// out at its zero value; that is success for operations with no payload.
func decode(resp *Response, out interface{}) error {
	if out == nil || resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return enterprise.DecodeError(err)
	}

	return nil
}

// Get performs a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return err
	}

	return decode(resp, out)
}

// Post performs a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		return err
	}

	return decode(resp, out)
}

// Put performs a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
	if err != nil {
		return err
	}

	return decode(resp, out)
}

// Delete performs a DELETE and decodes any response body into out.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
	if err != nil {
		return err
	}

	return decode(resp, out)
}

// GetBinary performs a GET for a non-JSON payload, e.g. a debug package.
func (c *Client) GetBinary(ctx context.Context, path string) ([]byte, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, constants.ExtendedHTTPTimeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, enterprise.ConnectionError(err)
	}

	httpReq.Header.Set("Accept", "*/*")

	resp, err := c.send(ctx, httpReq, path, nil)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// PostMultipart uploads a file as multipart/form-data and decodes the
// response into out. Used for module upload.
func (c *Client) PostMultipart(ctx context.Context, path, fieldName, filename string, contents io.Reader, out interface{}) error {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return enterprise.ConnectionError(err)
	}

	if _, err := io.Copy(part, contents); err != nil {
		return enterprise.ConnectionError(err)
	}

	if err := writer.Close(); err != nil {
		return enterprise.ConnectionError(err)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, constants.ExtendedHTTPTimeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return enterprise.ConnectionError(err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.send(ctx, httpReq, path, nil)
	if err != nil {
		return err
	}

	return decode(resp, out)
}
