// Package models defines client-side data models used by the chatfiles
// transfer services.
package models

import (
	"io"
	"time"
)

// CandidateFile is a caller-supplied file offered for upload. It lives only
// for the duration of one validate/upload call and is never persisted.
type CandidateFile struct {
	// Name is the caller-visible identity of the file (original filename).
	Name string

	// MimeType is the declared content type, e.g. "image/png".
	MimeType string

	// Size is the payload size in bytes.
	Size int64

	// Data supplies the raw bytes streamed to the storage target.
	Data io.Reader
}

// AuthContext carries the opaque credentials attached to API requests.
// Supplying them is the caller's concern; empty values mean anonymous.
type AuthContext struct {
	Token     string
	SessionID string
}

// Present reports whether both credentials are set.
func (a AuthContext) Present() bool {
	return a.Token != "" && a.SessionID != ""
}

// UploadMetadata is the registration payload sent before the byte transfer.
type UploadMetadata struct {
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}

// UploadTarget is the validated result of registering an upload: where to
// PUT the bytes and the server-assigned identity of the stored object.
type UploadTarget struct {
	// URL is the pre-authorized storage-target URL for a single direct PUT.
	URL string

	// StoredName is the server-assigned storage key (e.g. "chat/<uuid>.png").
	StoredName string

	// AccessURL is the public distribution URL of the stored object.
	AccessURL string

	// ExpiresIn is the target's validity window in seconds.
	ExpiresIn int64
}

// StoredFile describes a successfully uploaded object.
type StoredFile struct {
	OriginalName string
	StoredName   string
	MimeType     string
	Size         int64
}

// HistoryRecord is one row of the local upload history.
type HistoryRecord struct {
	ID           string
	OriginalName string
	StoredName   string
	MimeType     string
	Size         int64
	UploadedAt   time.Time
}
