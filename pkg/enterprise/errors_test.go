package enterprise

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status and detail",
			err:      &APIError{Kind: ErrorKindNotFound, StatusCode: 404, Detail: "db not found"},
			expected: "not_found (status 404): db not found",
		},
		{
			name:     "status only",
			err:      &APIError{Kind: ErrorKindServer, StatusCode: 502},
			expected: "server (status 502)",
		},
		{
			name:     "detail only",
			err:      &APIError{Kind: ErrorKindValidation, Detail: "name is required"},
			expected: "validation: name is required",
		},
		{
			name:     "wrapped error only",
			err:      &APIError{Kind: ErrorKindConnection, Err: errors.New("dial tcp: refused")},
			expected: "connection: dial tcp: refused",
		},
		{
			name:     "kind only",
			err:      &APIError{Kind: ErrorKindDecode},
			expected: "decode",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, testCase.err.Error())
		})
	}
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestClassifyResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		body         string
		expectedKind ErrorKind
	}{
		{
			name:         "401 with no body is a credential failure",
			status:       http.StatusUnauthorized,
			body:         "",
			expectedKind: ErrorKindAuthenticationFailed,
		},
		{
			name:         "401 with unparseable body is a credential failure",
			status:       http.StatusUnauthorized,
			body:         "<html>unauthorized</html>",
			expectedKind: ErrorKindAuthenticationFailed,
		},
		{
			name:         "401 with unrelated error_code is a credential failure",
			status:       http.StatusUnauthorized,
			body:         `{"error_code":"invalid_credentials"}`,
			expectedKind: ErrorKindAuthenticationFailed,
		},
		{
			name:         "401 with insufficient_permissions is unauthorized",
			status:       http.StatusUnauthorized,
			body:         `{"error_code":"insufficient_permissions"}`,
			expectedKind: ErrorKindUnauthorized,
		},
		{
			name:         "401 with forbidden is unauthorized",
			status:       http.StatusUnauthorized,
			body:         `{"error_code":"forbidden"}`,
			expectedKind: ErrorKindUnauthorized,
		},
		{
			name:         "403 is always unauthorized",
			status:       http.StatusForbidden,
			body:         "",
			expectedKind: ErrorKindUnauthorized,
		},
		{
			name:         "404",
			status:       http.StatusNotFound,
			body:         `{"error_code":"db_not_exist"}`,
			expectedKind: ErrorKindNotFound,
		},
		{
			name:         "400",
			status:       http.StatusBadRequest,
			body:         `{"description":"bad name"}`,
			expectedKind: ErrorKindValidation,
		},
		{
			name:         "409",
			status:       http.StatusConflict,
			body:         "",
			expectedKind: ErrorKindValidation,
		},
		{
			name:         "422",
			status:       http.StatusUnprocessableEntity,
			body:         "",
			expectedKind: ErrorKindValidation,
		},
		{
			name:         "500",
			status:       http.StatusInternalServerError,
			body:         "",
			expectedKind: ErrorKindServer,
		},
		{
			name:         "429 falls into the server class",
			status:       http.StatusTooManyRequests,
			body:         "",
			expectedKind: ErrorKindServer,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			apiErr := ClassifyResponse(testCase.status, []byte(testCase.body))
			assert.Equal(t, testCase.expectedKind, apiErr.Kind)
			assert.Equal(t, testCase.status, apiErr.StatusCode)
		})
	}
}

func TestClassifyResponse_DetailPrecedence(t *testing.T) {
	t.Parallel()

	t.Run("description wins", func(t *testing.T) {
		t.Parallel()

		apiErr := ClassifyResponse(400, []byte(`{"error_code":"bad_request","description":"name too long","message":"x"}`))
		assert.Equal(t, "name too long", apiErr.Detail)
	})

	t.Run("error_code is the fallback", func(t *testing.T) {
		t.Parallel()

		apiErr := ClassifyResponse(404, []byte(`{"error_code":"db_not_exist"}`))
		assert.Equal(t, "db_not_exist", apiErr.Detail)
	})

	t.Run("raw body is kept when not json", func(t *testing.T) {
		t.Parallel()

		apiErr := ClassifyResponse(500, []byte("proxy exploded"))
		assert.Equal(t, "proxy exploded", apiErr.Detail)
	})
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  ErrorKind
		check func(error) bool
	}{
		{ErrorKindConnection, IsConnection},
		{ErrorKindAuthenticationFailed, IsAuthenticationFailed},
		{ErrorKindUnauthorized, IsUnauthorized},
		{ErrorKindNotFound, IsNotFound},
		{ErrorKindValidation, IsValidation},
		{ErrorKindServer, IsServer},
		{ErrorKindDecode, IsDecode},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(string(testCase.kind), func(t *testing.T) {
			t.Parallel()

			direct := &APIError{Kind: testCase.kind}
			assert.True(t, testCase.check(direct))

			wrapped := fmt.Errorf("listing databases: %w", direct)
			assert.True(t, testCase.check(wrapped))

			other := &APIError{Kind: "something_else"}
			assert.False(t, testCase.check(other))
			assert.False(t, testCase.check(errors.New("plain")))
			assert.False(t, testCase.check(nil))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryable(ConnectionError(errors.New("timeout"))))
	assert.True(t, IsRetryable(&APIError{Kind: ErrorKindServer, StatusCode: 503}))
	assert.False(t, IsRetryable(&APIError{Kind: ErrorKindValidation, StatusCode: 400}))
	assert.False(t, IsRetryable(&APIError{Kind: ErrorKindNotFound, StatusCode: 404}))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("dial tcp: refused")
	apiErr := ConnectionError(underlying)

	assert.ErrorIs(t, apiErr, underlying)
}
