// Package credentials persists the client's bearer credential in the local
// SQLite metadata table so that a login survives process restarts.
package credentials
