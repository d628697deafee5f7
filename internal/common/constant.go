// Package common contains shared constants and sentinel errors used across
// quizmaster components.
package common

// AuthorizationHeaderName carries the bearer credential on authenticated calls.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// IdempotencyKeyHeaderName lets the scoring service drop a replayed submission.
const IdempotencyKeyHeaderName = "Idempotency-Key"

// Keys of the durable client metadata table.
const (
	MetadataKeyAccessToken = "access_token"
	MetadataKeyEmail       = "email"
)
