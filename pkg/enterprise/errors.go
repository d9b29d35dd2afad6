package enterprise

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the stable, enumerable classification of an API failure.
// Foreign-runtime bindings translate kinds into native error types by
// matching these identifiers, never by parsing messages.
type ErrorKind string

const (
	// ErrorKindConnection covers transport-level failures: DNS, TCP, TLS
	// handshake, and timeouts that fire before a response is received.
	ErrorKindConnection ErrorKind = "connection"

	// ErrorKindAuthenticationFailed means the server rejected the supplied
	// credentials.
	ErrorKindAuthenticationFailed ErrorKind = "authentication_failed"

	// ErrorKindUnauthorized means the credentials were accepted but the
	// operation is forbidden.
	ErrorKindUnauthorized ErrorKind = "unauthorized"

	// ErrorKindNotFound is a 404.
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindValidation covers 400/409/422-class responses: malformed or
	// conflicting input, with the server message preserved.
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindServer covers any other non-2xx status. Retryable by caller
	// policy; the client never retries these on its own.
	ErrorKindServer ErrorKind = "server"

	// ErrorKindDecode means the HTTP layer succeeded but the response body
	// did not match the expected shape. This is a client/schema mismatch,
	// never a request problem.
	ErrorKindDecode ErrorKind = "decode"
)

// APIError is the single failure value produced by every call through the
// client. Exactly one is returned per failed call.
type APIError struct {
	Kind       ErrorKind `json:"kind"`
	StatusCode int       `json:"status_code,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Detail != "":
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Detail)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the underlying transport or decode error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// errorBody is the JSON error shape returned by the Enterprise REST API.
type errorBody struct {
	ErrorCode   string `json:"error_code"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	Message     string `json:"message"`
}

func (b *errorBody) detail() string {
	switch {
	case b.Description != "":
		return b.Description
	case b.Detail != "":
		return b.Detail
	case b.Message != "":
		return b.Message
	default:
		return b.ErrorCode
	}
}

// forbiddenErrorCodes are the error_code values that mark a 401 as a
// permission failure rather than a credential failure.
var forbiddenErrorCodes = map[string]bool{
	"insufficient_permissions": true,
	"forbidden":                true,
}

// ClassifyResponse maps a non-2xx status and its body onto exactly one
// APIError. Classification is by status code first; the body is consulted
// only where the status alone is ambiguous.
//
// The 401 rule is deterministic: a 401 whose JSON body carries an
// error_code of "insufficient_permissions" or "forbidden" is classified as
// Unauthorized; every other 401 — including one with a missing or
// unparseable body — is classified as AuthenticationFailed. A 403 is
// always Unauthorized.
func ClassifyResponse(status int, body []byte) *APIError {
	detail := string(body)

	var parsed errorBody
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil {
		if d := parsed.detail(); d != "" {
			detail = d
		}
	}

	switch status {
	case http.StatusUnauthorized:
		if forbiddenErrorCodes[parsed.ErrorCode] {
			return &APIError{Kind: ErrorKindUnauthorized, StatusCode: status, Detail: detail}
		}

		return &APIError{Kind: ErrorKindAuthenticationFailed, StatusCode: status, Detail: detail}
	case http.StatusForbidden:
		return &APIError{Kind: ErrorKindUnauthorized, StatusCode: status, Detail: detail}
	case http.StatusNotFound:
		return &APIError{Kind: ErrorKindNotFound, StatusCode: status, Detail: detail}
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return &APIError{Kind: ErrorKindValidation, StatusCode: status, Detail: detail}
	default:
		return &APIError{Kind: ErrorKindServer, StatusCode: status, Detail: detail}
	}
}

// ConnectionError wraps a transport failure.
func ConnectionError(err error) *APIError {
	return &APIError{Kind: ErrorKindConnection, Err: err, Detail: err.Error()}
}

// DecodeError wraps a response-body decode failure.
func DecodeError(err error) *APIError {
	return &APIError{Kind: ErrorKindDecode, Err: err, Detail: err.Error()}
}

// ValidationError reports a request rejected before any network I/O.
func ValidationError(detail string) *APIError {
	return &APIError{Kind: ErrorKindValidation, Detail: detail}
}

func isKind(err error, kind ErrorKind) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// IsConnection checks whether err is a transport-level failure.
func IsConnection(err error) bool { return isKind(err, ErrorKindConnection) }

// IsAuthenticationFailed checks whether err is a credential rejection.
func IsAuthenticationFailed(err error) bool { return isKind(err, ErrorKindAuthenticationFailed) }

// IsUnauthorized checks whether err is a forbidden-operation failure.
func IsUnauthorized(err error) bool { return isKind(err, ErrorKindUnauthorized) }

// IsNotFound checks whether err is a 404.
func IsNotFound(err error) bool { return isKind(err, ErrorKindNotFound) }

// IsValidation checks whether err is a malformed- or conflicting-input failure.
func IsValidation(err error) bool { return isKind(err, ErrorKindValidation) }

// IsServer checks whether err is an unclassified non-2xx response.
func IsServer(err error) bool { return isKind(err, ErrorKindServer) }

// IsDecode checks whether err is a response-shape mismatch.
func IsDecode(err error) bool { return isKind(err, ErrorKindDecode) }

// IsRetryable reports whether err is transient by common policy: connection
// failures and server-class responses. The client itself never retries.
func IsRetryable(err error) bool {
	return IsConnection(err) || IsServer(err)
}

// Construction-time configuration errors. These are distinct from APIError:
// they are detected before any request is attempted.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrInvalidBaseURL      = errors.New("base URL is not a valid absolute URL")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrExtraFieldNotFound  = errors.New("field not present")
	ErrCircuitBreakerOpen  = errors.New("circuit breaker is open")
	ErrServiceBusy         = errors.New("service is at its in-flight bound")
)
