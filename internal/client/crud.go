// Package client implements the typed resource clients. Every resource
// family funnels through the generic CRUD shapes below; only custom actions
// get hand-written request code.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/redisops-io/enterprise-go/internal/http"
)

// ResourceID is the identifier type a resource family keys on: numeric uid
// for databases, nodes, users, roles, and ACLs; string uid for modules,
// alerts, and actions.
type ResourceID interface {
	uint32 | string
}

// idPath joins a collection path and an identifier. String identifiers are
// path-escaped; they are never embedded raw.
func idPath[ID ResourceID](base string, id ID) string {
	switch v := any(id).(type) {
	case uint32:
		return base + "/" + strconv.FormatUint(uint64(v), 10)
	case string:
		return base + "/" + url.PathEscape(v)
	default:
		// unreachable: ResourceID admits exactly the two cases above
		panic(fmt.Sprintf("unsupported resource id type %T", v))
	}
}

// listResources fetches a collection. The result is never nil: an empty
// collection decodes to an empty slice.
func listResources[T any](ctx context.Context, httpClient *http.Client, path, resource string) ([]T, error) {
	var out []T
	if err := httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("listing %s: %w", resource, err)
	}

	if out == nil {
		out = []T{}
	}

	return out, nil
}

// getResource fetches one entity by identifier.
func getResource[T any, ID ResourceID](ctx context.Context, httpClient *http.Client, base, resource string, id ID) (*T, error) {
	var out T
	if err := httpClient.Get(ctx, idPath(base, id), nil, &out); err != nil {
		return nil, fmt.Errorf("getting %s: %w", resource, err)
	}

	return &out, nil
}

// createResource POSTs a creation request and decodes the created entity.
func createResource[T, R any](ctx context.Context, httpClient *http.Client, path, resource string, request *R) (*T, error) {
	var out T
	if err := httpClient.Post(ctx, path, request, &out); err != nil {
		return nil, fmt.Errorf("creating %s: %w", resource, err)
	}

	return &out, nil
}

// updateResource PUTs a partial update and decodes the updated entity.
func updateResource[T, R any, ID ResourceID](ctx context.Context, httpClient *http.Client, base, resource string, id ID, request *R) (*T, error) {
	var out T
	if err := httpClient.Put(ctx, idPath(base, id), request, &out); err != nil {
		return nil, fmt.Errorf("updating %s: %w", resource, err)
	}

	return &out, nil
}

// deleteResource deletes one entity by identifier. A 204 or empty 200 is
// success.
func deleteResource[ID ResourceID](ctx context.Context, httpClient *http.Client, base, resource string, id ID) error {
	if err := httpClient.Delete(ctx, idPath(base, id), nil); err != nil {
		return fmt.Errorf("deleting %s: %w", resource, err)
	}

	return nil
}
