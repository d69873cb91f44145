// Package common defines shared constants and sentinel errors used across
// the chatfiles client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrAuthenticationExpired is deliberately not folded into transfer
	// results: it requires re-login, not a user-facing message.
	ErrAuthenticationExpired = errors.New("authentication expired")

	// ErrNoUploadTarget signals a registration response that did not carry
	// a usable storage-target URL.
	ErrNoUploadTarget = errors.New("no upload target in server response")

	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
