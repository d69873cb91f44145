package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/common"
)

// errorBodyLimit caps how much of an error response body is read while
// looking for a server-supplied message.
const errorBodyLimit = 4 * 1024

// HTTPClient implements Client over plain HTTP: JSON registration against
// the API, raw PUT against the storage target, raw GET against the
// distribution endpoint.
type HTTPClient struct {
	apiBaseURL string
	http       *http.Client
}

func NewHTTPClient(apiBaseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		apiBaseURL: apiBaseURL,
		http:       &http.Client{Timeout: timeout},
	}
}

// uploadResponse is the registration response contract: the presigned PUT
// URL plus the stored file's server-side metadata.
type uploadResponse struct {
	URL       string `json:"url"`
	AccessURL string `json:"accessUrl"`
	ExpiresIn int64  `json:"expiresIn"`
	File      struct {
		Filename     string `json:"filename"`
		OriginalName string `json:"originalname"`
		MimeType     string `json:"mimetype"`
		Size         int64  `json:"size"`
	} `json:"file"`
}

func (c *HTTPClient) RegisterUpload(ctx context.Context, meta models.UploadMetadata, auth models.AuthContext) (*models.UploadTarget, error) {
	body, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBaseURL+"/api/files/upload", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setAuthHeaders(req, auth)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("register upload: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if ur.URL == "" {
		return nil, common.ErrNoUploadTarget
	}

	return &models.UploadTarget{
		URL:        ur.URL,
		StoredName: ur.File.Filename,
		AccessURL:  ur.AccessURL,
		ExpiresIn:  ur.ExpiresIn,
	}, nil
}

func (c *HTTPClient) PutObject(ctx context.Context, url, contentType string, r io.Reader, size int64, onProgress func(int)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		url, newProgressReader(r, size, onProgress))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *HTTPClient) FetchObject(ctx context.Context, url string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch object: %w", err)
	}

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return resp.Body, contentType, nil
}

// setAuthHeaders attaches the token/session pair when both are present,
// otherwise a bare Accept header.
func setAuthHeaders(req *http.Request, auth models.AuthContext) {
	req.Header.Set("Accept", "application/json, */*")
	if auth.Present() {
		req.Header.Set(common.AuthTokenHeaderName, auth.Token)
		req.Header.Set(common.SessionIDHeaderName, auth.SessionID)
	}
}

// checkStatus converts a non-2xx response into an error: 401 is the
// distinguished authentication-expired signal, everything else becomes a
// StatusError carrying any server-supplied message.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return common.ErrAuthenticationExpired
	}
	return &common.StatusError{
		StatusCode: resp.StatusCode,
		Message:    serverMessage(resp.Body),
	}
}

// serverMessage extracts a {"message": ...} field from an error body if the
// backend happened to send one. Anything else yields "" and the caller's
// generic message applies.
func serverMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, errorBodyLimit))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
