// Package client contains the transport layer of the quiz client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): auth,
//     profile, categories, quiz start and scores.
//  2. An HTTP/JSON implementation (see HTTPClient) that adds the bearer
//     token to authenticated calls and maps status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with embedded goose migrations.
//
// # Error Handling
//
// Failures are reported as sentinel errors matched with errors.Is:
// ErrUnavailable (network failure), ErrUnauthorized (401/403), ErrConflict
// (409), ErrRejected (other 4xx) and ErrServer (5xx). The wrapped message keeps
// the method, path, status and response body.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call accepts a context and
// honors cancellation; no timeout is added beyond the configured http.Client.
package client
