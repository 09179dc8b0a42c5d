// Package bibleclient provides the primary entry point for constructing a
// Scriptura API client that implements the scriptura.Client interface.
//
// It layers configuration validation, base-URL normalization, and HTTP
// transport on top of the resource interfaces and types defined in the
// scriptura package. Most applications should import bibleclient to build a
// client, then use the returned scriptura.Client to access resource-specific
// clients, for example Bibles(), Languages(), Organizations().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/scriptura-io/scriptura-client/pkg/bibleclient"
//	  "github.com/scriptura-io/scriptura-client/pkg/scriptura"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an application key.
//	  cli, err := bibleclient.NewWithKey("app-key")
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  // Or with a full config:
//	  cli, err = bibleclient.New(&scriptura.Config{
//	    APIKey:  "app-key",
//	    Timeout: 10 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.Bibles().GetVersion(ctx, 111)
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Facades
//
// New returns the blocking facade; NewAsync returns the future-based facade.
// Each owns its own connection pool, and both are safe for concurrent use.
//
// # Helpers
//
// The package also provides convenience constructors NewWithKey and
// NewAsyncWithKey that wrap New and NewAsync with a key-only configuration.
package bibleclient
