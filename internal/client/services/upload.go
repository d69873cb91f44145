// Package services contains the transfer orchestrators of the chatfiles
// client: uploads (register metadata, stream bytes to the storage target,
// track and cancel in-flight transfers) and downloads from the distribution
// endpoint.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/osadchiy/chatfiles/internal/client/classify"
	"github.com/osadchiy/chatfiles/internal/client/client"
	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/client/policy"
	"github.com/osadchiy/chatfiles/internal/client/registry"
	"github.com/osadchiy/chatfiles/internal/client/repositories/history"
	"github.com/osadchiy/chatfiles/internal/common"
	"github.com/osadchiy/chatfiles/internal/logging"
)

// UploadService drives the two-phase upload protocol.
//
// Contract:
//   - Upload returns a non-nil error ONLY for authentication expiry
//     (common.ErrAuthenticationExpired); every other failure — validation,
//     cancellation, transport — comes back inside the UploadResult.
//   - A second Upload for a name already in flight cancels and replaces the
//     first transfer.
type UploadService interface {
	Upload(ctx context.Context, file *models.CandidateFile, auth models.AuthContext, onProgress func(percent int)) (*models.UploadResult, error)
	Cancel(name string) bool
	CancelAll() int
}

type uploadService struct {
	client    client.Client
	validator *policy.Validator
	registry  *registry.Registry
	history   history.Repository
	log       logging.Logger
}

// NewUploadService constructs an UploadService. The registry is owned by the
// service for its lifetime. history may be nil, in which case completed
// uploads are not recorded locally.
func NewUploadService(c client.Client, validator *policy.Validator, reg *registry.Registry, hist history.Repository, log logging.Logger) UploadService {
	return &uploadService{
		client:    c,
		validator: validator,
		registry:  reg,
		history:   hist,
		log:       log,
	}
}

func (s *uploadService) Upload(ctx context.Context, file *models.CandidateFile, auth models.AuthContext, onProgress func(int)) (*models.UploadResult, error) {
	if out := s.validator.Validate(file); !out.OK {
		s.log.Warn(ctx, "upload rejected by policy", "reason", out.Reason)
		return &models.UploadResult{OK: false, Message: out.Reason}, nil
	}

	meta := models.UploadMetadata{
		OriginalName: file.Name,
		MimeType:     file.MimeType,
		Size:         file.Size,
	}

	target, err := s.client.RegisterUpload(ctx, meta, auth)
	if err != nil {
		return s.fail(ctx, file.Name, err)
	}

	// The transfer becomes cancelable once bytes start moving; cleanup is
	// keyed by the same name used at registration, success or failure.
	upCtx, handle := s.registry.Begin(ctx, file.Name)
	defer s.registry.Finish(handle)

	guard := newProgressGuard(onProgress)
	defer guard.stop()

	err = s.client.PutObject(upCtx, target.URL, file.MimeType, file.Data, file.Size, guard.report)
	if err != nil {
		return s.fail(ctx, file.Name, err)
	}

	stored := &models.StoredFile{
		OriginalName: file.Name,
		StoredName:   target.StoredName,
		MimeType:     file.MimeType,
		Size:         file.Size,
	}
	s.record(ctx, stored)

	s.log.Info(ctx, "upload completed", "name", file.Name, "storedName", stored.StoredName, "size", file.Size)
	return &models.UploadResult{OK: true, File: stored}, nil
}

// Cancel signals the in-flight upload registered under name.
func (s *uploadService) Cancel(name string) bool {
	return s.registry.Cancel(name)
}

// CancelAll cancels every in-flight upload and returns the count.
func (s *uploadService) CancelAll() int {
	return s.registry.CancelAll()
}

func (s *uploadService) fail(ctx context.Context, name string, err error) (*models.UploadResult, error) {
	if errors.Is(err, common.ErrAuthenticationExpired) {
		s.log.Error(ctx, "upload authentication expired", "name", name)
		return nil, common.ErrAuthenticationExpired
	}

	c := classify.Classify(err, classify.OpUpload)
	s.log.Error(ctx, "upload failed",
		"name", name, "kind", string(c.Kind), "retryable", classify.IsRetryable(err), "error", err)
	return models.UploadFailure(c), nil
}

// record appends the completed upload to the local history. Best effort: a
// storage failure is logged but does not fail the upload.
func (s *uploadService) record(ctx context.Context, stored *models.StoredFile) {
	if s.history == nil {
		return
	}

	rec := &models.HistoryRecord{
		ID:           uuid.NewString(),
		OriginalName: stored.OriginalName,
		StoredName:   stored.StoredName,
		MimeType:     stored.MimeType,
		Size:         stored.Size,
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.history.Insert(ctx, rec); err != nil {
		s.log.Warn(ctx, "failed to record upload history", "storedName", stored.StoredName, "error", err)
	}
}

// progressGuard makes a caller progress callback inert once the upload call
// settles, so no progress event can fire after Upload returns.
type progressGuard struct {
	mu sync.Mutex
	fn func(int)
}

func newProgressGuard(fn func(int)) *progressGuard {
	return &progressGuard{fn: fn}
}

func (g *progressGuard) report(pct int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fn != nil {
		g.fn(pct)
	}
}

func (g *progressGuard) stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fn = nil
}
