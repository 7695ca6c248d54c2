// Package ygclient provides the primary entry point for constructing a
// YouGile API client that implements the yougile.Client interface.
//
// It layers configuration, HTTP transport, authentication, rate limiting,
// and retries on top of the resource interfaces and types defined in the
// yougile package. Most applications should import ygclient to build a
// client, then use the returned yougile.Client to access resource-specific
// clients, for example Tasks(), Boards(), Projects(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/yougile/go-yougile/pkg/yougile"
//	  "github.com/yougile/go-yougile/pkg/ygclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an API key you already have:
//	  cli, err := ygclient.NewWithKey(ctx, "your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with login/password. The client lists the account's companies,
//	  // verifies CompanyID, and issues a key scoped to it on first use.
//	  cli, err = ygclient.New(ctx, &yougile.Config{
//	    Login:     "user@example.com",
//	    Password:  "pass",
//	    CompanyID: "6f3c6f3c-0000-0000-0000-000000000000",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  tasks, err := cli.Tasks().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = tasks
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithKey and
// NewWithPassword that wrap New with the appropriate configuration.
package ygclient
