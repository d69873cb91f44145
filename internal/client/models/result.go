package models

import "github.com/osadchiy/chatfiles/internal/client/classify"

// UploadResult is the uniform outcome of one upload call. Callers branch on
// OK; Kind and Message describe the failure otherwise. Authentication expiry
// never appears here — it propagates as an error instead.
type UploadResult struct {
	OK      bool
	Message string
	Kind    classify.Kind

	// File is set on success and carries the server-assigned storage key.
	File *StoredFile
}

// DownloadResult is the uniform outcome of one download call. SavedPath is
// the local path the bytes were written to on success.
type DownloadResult struct {
	OK        bool
	Message   string
	Kind      classify.Kind
	SavedPath string
}

// UploadFailure builds a failed UploadResult from a classification.
func UploadFailure(c classify.Classified) *UploadResult {
	return &UploadResult{OK: false, Kind: c.Kind, Message: c.Message}
}

// DownloadFailure builds a failed DownloadResult from a classification.
func DownloadFailure(c classify.Classified) *DownloadResult {
	return &DownloadResult{OK: false, Kind: c.Kind, Message: c.Message}
}
