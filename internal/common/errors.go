// Package common defines shared sentinel error kinds used across the
// Chunk client layers. Callers match them with errors.Is.
package common

import "errors"

var (
	// Transport-level failures (server unreachable, timeout, dial error).
	ErrNetwork = errors.New("network unreachable")

	// Backend rejected the credentials (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Duplicate account on registration (HTTP 409).
	ErrConflict = errors.New("account already exists")

	// Malformed request rejected by backend validation (HTTP 400/422).
	ErrValidationFailed = errors.New("validation failed")

	// Realtime operation attempted without an open connection.
	ErrNotConnected = errors.New("not connected")

	// Anything the taxonomy does not name.
	ErrUnknown = errors.New("unknown error")
)
