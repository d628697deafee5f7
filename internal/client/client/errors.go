package client

import "errors"

// Transport-level outcomes. Services convert them into the error kinds of
// package common.
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrRejected     = errors.New("request rejected")
	ErrServer       = errors.New("server error")
)
