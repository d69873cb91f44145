// Package classify maps transport failures onto a stable, user-presentable
// error taxonomy and judges whether a failure is worth retrying. It never
// executes retries itself; that is the caller's loop.
package classify

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/osadchiy/chatfiles/internal/common"
)

// Kind is the closed set of classified failure kinds.
type Kind string

const (
	KindBadRequest           Kind = "bad_request"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
	KindNotFound             Kind = "not_found"
	KindPayloadTooLarge      Kind = "payload_too_large"
	KindUnsupportedMediaType Kind = "unsupported_media_type"
	KindServerError          Kind = "server_error"
	KindServiceUnavailable   Kind = "service_unavailable"
	KindTimeout              Kind = "timeout"
	KindNetwork              Kind = "network"
	KindCanceled             Kind = "canceled"
	KindUnknown              Kind = "unknown"
)

// Op selects the message templates for the operation being classified.
type Op string

const (
	OpUpload   Op = "upload"
	OpDownload Op = "download"
)

// Classified is the outcome of mapping one failure.
type Classified struct {
	Kind    Kind
	Message string
}

// Classify maps err onto a Kind and a user-presentable message. Pure:
// it inspects the error chain and mutates nothing.
func Classify(err error, op Op) Classified {
	if errors.Is(err, common.ErrNoUploadTarget) {
		return Classified{KindServerError, "the server did not return an upload target"}
	}

	if errors.Is(err, context.Canceled) {
		return Classified{KindCanceled, op.canceledMessage()}
	}

	if isTimeout(err) {
		return Classified{KindTimeout, op.timeoutMessage()}
	}

	var se *common.StatusError
	if errors.As(err, &se) {
		return classifyStatus(se, op)
	}

	// No response at all: connection refused, DNS failure, offline.
	if isTransport(err) {
		return Classified{KindNetwork, "network error, please check your connection"}
	}

	// A response arrived but could not be used (malformed body), or the
	// request was never built. Surface the error's own text.
	return Classified{KindUnknown, err.Error()}
}

// IsRetryable reports whether the caller's own retry loop should consider
// the failure transient. Timeouts and response-less transport failures are
// retryable; of the status codes only 408, 429, 500, 502, 503 and 504 are.
// Deterministic failures (cancellation, decode errors) are not.
func IsRetryable(err error) bool {
	var se *common.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case 408, 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}
	return isTimeout(err) || isTransport(err)
}

// isTransport reports whether err comes from the transport layer, i.e. the
// request left the client but no usable response came back.
func isTransport(err error) bool {
	var ue *url.Error
	if errors.As(err, &ue) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func classifyStatus(se *common.StatusError, op Op) Classified {
	var c Classified

	switch se.StatusCode {
	case 400:
		c = Classified{KindBadRequest, "invalid request"}
	case 401:
		c = Classified{KindUnauthorized, "authentication required"}
	case 413:
		c = Classified{KindPayloadTooLarge, "file is too large"}
	case 415:
		c = Classified{KindUnsupportedMediaType, "unsupported file format"}
	case 500:
		c = Classified{KindServerError, "a server error occurred"}
	case 503:
		c = Classified{KindServiceUnavailable, "service temporarily unavailable"}
	case 403:
		if op == OpDownload {
			c = Classified{KindForbidden, "you do not have permission to access this file"}
		} else {
			c = Classified{KindUnknown, op.genericMessage()}
		}
	case 404:
		if op == OpDownload {
			c = Classified{KindNotFound, "file not found"}
		} else {
			c = Classified{KindUnknown, op.genericMessage()}
		}
	default:
		c = Classified{KindUnknown, op.genericMessage()}
	}

	if se.Message != "" {
		c.Message = se.Message
	}
	return c
}

func (op Op) timeoutMessage() string {
	if op == OpDownload {
		return "file download timed out"
	}
	return "file upload timed out"
}

func (op Op) canceledMessage() string {
	if op == OpDownload {
		return "download canceled"
	}
	return "upload canceled"
}

func (op Op) genericMessage() string {
	if op == OpDownload {
		return "file download failed"
	}
	return "file upload failed"
}
