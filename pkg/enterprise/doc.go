// Package enterprise provides the public types and interfaces for the Redis
// Enterprise cluster-management REST API client.
//
// The package defines the Client interface and the per-resource client
// interfaces, the entity and request types for every resource family, the
// error taxonomy shared by all operations, query-parameter builders, an
// interceptor chain for request/response middleware, and the generic service
// adapter surface for embedding the client behind transport-agnostic
// middleware stacks.
//
// Implementations live in internal packages and are constructed through
// pkg/reclient.
package enterprise
