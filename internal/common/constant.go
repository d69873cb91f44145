// Package common contains shared constants and sentinel errors used across
// chatfiles components.
package common

const (
	// AuthTokenHeaderName carries the access token on outbound API requests.
	AuthTokenHeaderName = "x-auth-token"

	// SessionIDHeaderName carries the session id on outbound API requests.
	SessionIDHeaderName = "x-session-id"
)
