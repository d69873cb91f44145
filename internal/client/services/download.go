package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/osadchiy/chatfiles/internal/client/classify"
	"github.com/osadchiy/chatfiles/internal/client/client"
	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/common"
	"github.com/osadchiy/chatfiles/internal/filex"
	"github.com/osadchiy/chatfiles/internal/logging"
)

// DownloadService fetches previously uploaded files from the public
// distribution endpoint and saves them locally. As with uploads, the error
// return is non-nil only for authentication expiry.
type DownloadService interface {
	Download(ctx context.Context, storedName, suggestedName string) (*models.DownloadResult, error)
}

type downloadService struct {
	client              client.Client
	distributionBaseURL string
	downloadDir         string
	log                 logging.Logger
}

func NewDownloadService(c client.Client, distributionBaseURL, downloadDir string, log logging.Logger) DownloadService {
	return &downloadService{
		client:              c,
		distributionBaseURL: strings.TrimRight(distributionBaseURL, "/"),
		downloadDir:         downloadDir,
		log:                 log,
	}
}

func (s *downloadService) Download(ctx context.Context, storedName, suggestedName string) (*models.DownloadResult, error) {
	// The server-assigned storage key already carries the chat/ prefix, so
	// names pasted from the upload history must not double it.
	storedName = strings.TrimPrefix(storedName, "chat/")
	url := fmt.Sprintf("%s/chat/%s", s.distributionBaseURL, storedName)

	// The distribution endpoint is public; no credentials are attached.
	body, contentType, err := s.client.FetchObject(ctx, url)
	if err != nil {
		return s.fail(ctx, storedName, err)
	}
	defer body.Close()

	name := filepath.Base(suggestedName)
	if suggestedName == "" {
		name = uuid.NewString() + filex.FileExtension(storedName)
	}

	path, err := s.save(body, name)
	if err != nil {
		s.log.Error(ctx, "download save failed", "storedName", storedName, "error", err)
		return &models.DownloadResult{OK: false, Kind: classify.KindUnknown, Message: "file download failed"}, nil
	}

	s.log.Info(ctx, "download completed",
		"storedName", storedName, "savedPath", path, "contentType", contentType)
	return &models.DownloadResult{OK: true, SavedPath: path}, nil
}

// save streams the body into the download directory via a temp file and an
// atomic rename, so an interrupted download never leaves a partial file
// under the final name.
func (s *downloadService) save(body io.Reader, name string) (string, error) {
	dir, err := filex.EnsureDir(s.downloadDir)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("write download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	dest := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("rename download: %w", err)
	}
	return dest, nil
}

func (s *downloadService) fail(ctx context.Context, storedName string, err error) (*models.DownloadResult, error) {
	if errors.Is(err, common.ErrAuthenticationExpired) {
		s.log.Error(ctx, "download authentication expired", "storedName", storedName)
		return nil, common.ErrAuthenticationExpired
	}

	c := classify.Classify(err, classify.OpDownload)
	s.log.Error(ctx, "download failed",
		"storedName", storedName, "kind", string(c.Kind), "retryable", classify.IsRetryable(err), "error", err)
	return models.DownloadFailure(c), nil
}
