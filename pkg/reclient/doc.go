// Package reclient provides the primary entry point for constructing a
// Redis Enterprise cluster management client that implements the
// enterprise.Client interface.
//
// It layers configuration validation, URL normalization, and HTTP transport
// on top of the resource interfaces and types defined in the enterprise
// package. Most applications should import reclient to build a client, then
// use the returned enterprise.Client to access resource-specific clients,
// for example Databases(), Cluster(), Users(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/redisops-io/enterprise-go/pkg/enterprise"
//	  "github.com/redisops-io/enterprise-go/pkg/reclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := reclient.New(&enterprise.Config{
//	    BaseURL:  "https://cluster.example.com:9443",
//	    Username: "admin@example.com",
//	    Password: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  databases, err := cli.Databases().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = databases
//	}
//
// # TLS
//
// Clusters commonly run with self-signed certificates. Set
// Config.Insecure=true to skip verification; prefer installing the cluster
// CA instead.
//
// # Helpers
//
// The package also provides NewWithPassword for the common URL/username/
// password case and FromEnv, which reads REDIS_ENTERPRISE_URL,
// REDIS_ENTERPRISE_USER, REDIS_ENTERPRISE_PASSWORD, and
// REDIS_ENTERPRISE_INSECURE.
package reclient
