package client

import (
	"context"
	"io"

	"github.com/osadchiy/chatfiles/internal/client/models"
)

// Client is the outbound transport consumed by the transfer services.
type Client interface {
	// RegisterUpload submits file metadata and returns the validated
	// storage target for the subsequent byte transfer.
	RegisterUpload(ctx context.Context, meta models.UploadMetadata, auth models.AuthContext) (*models.UploadTarget, error)

	// PutObject streams size bytes from r to the storage target with the
	// given content type, invoking onProgress with a 0–100 percentage as
	// bytes are consumed.
	PutObject(ctx context.Context, url, contentType string, r io.Reader, size int64, onProgress func(int)) error

	// FetchObject retrieves an object from the public distribution
	// endpoint. No credentials are attached. The caller owns the body.
	FetchObject(ctx context.Context, url string) (io.ReadCloser, string, error)
}
