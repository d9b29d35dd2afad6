package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

func TestModulesClient_ListGetDelete(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, []enterprise.Module{
			{UID: "search-mod", ModuleName: "search", SemanticVersion: "2.10.5"},
		})

		modules, err := server.Client().Modules().List(context.Background())
		require.NoError(t, err)
		require.Len(t, modules, 1)
		assert.Equal(t, "search", modules[0].ModuleName)
		server.AssertCalled(t, "GET", "/v1/modules")
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.Module{UID: "search-mod"})

		module, err := server.Client().Modules().Get(context.Background(), "search-mod")
		require.NoError(t, err)
		assert.Equal(t, "search-mod", module.UID)
		server.AssertCalled(t, "GET", "/v1/modules/search-mod")
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil)

		err := server.Client().Modules().Delete(context.Background(), "search-mod")
		require.NoError(t, err)
		server.AssertCalled(t, "DELETE", "/v1/modules/search-mod")
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestModulesClient_Upload(t *testing.T) {
	t.Parallel()

	t.Run("uploads through v2 when available", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotFilename string

		var gotContents []byte

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			gotPath = request.URL.Path

			file, header, err := request.FormFile("module")
			require.NoError(t, err)
			defer func() { _ = file.Close() }()

			gotFilename = header.Filename

			gotContents, err = io.ReadAll(file)
			require.NoError(t, err)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(enterprise.Module{UID: "bloom-mod", ModuleName: "bf"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		module, err := client.Modules().Upload(context.Background(), "redisbloom.zip", strings.NewReader("module-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "bloom-mod", module.UID)
		assert.Equal(t, "/v2/modules", gotPath)
		assert.Equal(t, "redisbloom.zip", gotFilename)
		assert.Equal(t, "module-bytes", string(gotContents))
	})

	t.Run("falls back to v1 when v2 is missing", func(t *testing.T) {
		t.Parallel()

		var paths []string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			paths = append(paths, request.URL.Path)

			if request.URL.Path == "/v2/modules" {
				writer.WriteHeader(http.StatusNotFound)

				return
			}

			file, _, err := request.FormFile("module")
			require.NoError(t, err)
			_ = file.Close()

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(enterprise.Module{UID: "bloom-mod"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		module, err := client.Modules().Upload(context.Background(), "redisbloom.zip", strings.NewReader("module-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "bloom-mod", module.UID)
		assert.Equal(t, []string{"/v2/modules", "/v1/modules"}, paths)
	})

	t.Run("non-404 failure does not fall back", func(t *testing.T) {
		t.Parallel()

		var calls int

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls++

			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"error_code":  "invalid_module",
				"description": "not a module package",
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		module, err := client.Modules().Upload(context.Background(), "broken.zip", strings.NewReader("junk"))
		require.Error(t, err)
		assert.Nil(t, module)
		assert.True(t, enterprise.IsValidation(err))
		assert.Equal(t, 1, calls)
	})
}
