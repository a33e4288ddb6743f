// Package api contains the Chunk backend API contract and its HTTP
// implementation.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     auth exchanges, the customer and driver REST surfaces, media upload
//     and notifications.
//  2. A concrete HTTP implementation (see HTTPClient) that injects the
//     current access token as a Bearer header on every request and maps
//     HTTP statuses to the shared error kinds.
//
// # Error Handling
//
// Every failure is returned as *Error whose Kind is one of the sentinels in
// internal/common, so callers match with errors.Is:
//
//	if errors.Is(err, common.ErrConflict) { ... }
//
// 401 maps to ErrInvalidCredentials, 409 to ErrConflict, 400/422 to
// ErrValidationFailed, transport failures to ErrNetwork, and everything
// else to ErrUnknown. The Message field prefers the backend-provided text.
//
// There is no global 401 interception here: a stale token fails the
// individual call and only a rejected refresh logs the user out (see the
// auth service).
package api
