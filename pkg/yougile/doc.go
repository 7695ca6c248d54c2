// Package yougile provides types, interfaces, and helpers for working with
// the YouGile REST API.
//
// # Overview
//
// The yougile package defines the domain types (e.g., Task, Board, Project,
// User) and the interfaces for resource-oriented clients (e.g., TasksClient,
// BoardsClient). A concrete implementation of these clients is provided by
// the ygclient package, which wires configuration, transport, authentication,
// rate limiting, and retries. Most consumers should import ygclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := ygclient.New(ctx, &yougile.Config{
//	    Login:     "user@example.com",
//	    Password:  "secret",
//	    CompanyID: "6f3c6f3c-0000-0000-0000-000000000000",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  tasks, err := cli.Tasks().List(ctx, &yougile.TaskListOptions{
//	    ListOptions: yougile.ListOptions{Limit: 50},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = tasks
//	}
//
// # Authentication
//
// Credentials are negotiated lazily: the first request triggers the login
// sequence (company discovery followed by API key issuance) and the issued
// key is reused for bearer authentication until the server rejects it with
// 401; the client then re-authenticates once and replays the request.
// Supplying Config.APIKey skips the login sequence entirely.
//
// # Rate limiting and retries
//
// All requests, including the authentication calls, pass through a sliding
// window rate limiter honoring the documented 50 requests per 60 seconds
// quota. Transient failures (429, 5xx, transport errors) are retried with
// capped exponential backoff and jitter; client errors are never retried.
//
// # Errors
//
// API errors are represented by APIError; terminal failures reach the caller
// as a RequestError wrapping one of the sentinel kinds (ErrInvalidCredentials,
// ErrRequestRejected, ErrServerError, ...). Helpers such as IsNotFound and
// IsUnauthorized make it easy to branch on common cases.
//
// # Caching
//
// A pluggable Cache abstraction (in-memory or NATS JetStream KV) can serve
// repeated GET responses without spending request quota; writes invalidate
// the affected paths.
package yougile
