package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/common"
	"github.com/stretchr/testify/require"
)

var testAuth = models.AuthContext{Token: "tok-1", SessionID: "sess-1"}

func TestRegisterUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/files/upload", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "tok-1", r.Header.Get("x-auth-token"))
		require.Equal(t, "sess-1", r.Header.Get("x-session-id"))

		var meta models.UploadMetadata
		require.NoError(t, json.NewDecoder(r.Body).Decode(&meta))
		require.Equal(t, "photo.png", meta.OriginalName)
		require.Equal(t, int64(123), meta.Size)

		json.NewEncoder(w).Encode(map[string]any{
			"url":       "https://bucket.example.com/chat/abc.png?sig=x",
			"accessUrl": "https://cdn.example.com/chat/abc.png",
			"expiresIn": 600,
			"file": map[string]any{
				"filename":     "chat/abc.png",
				"originalname": "photo.png",
				"mimetype":     "image/png",
				"size":         123,
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	target, err := c.RegisterUpload(context.Background(),
		models.UploadMetadata{OriginalName: "photo.png", MimeType: "image/png", Size: 123}, testAuth)
	require.NoError(t, err)
	require.Equal(t, "https://bucket.example.com/chat/abc.png?sig=x", target.URL)
	require.Equal(t, "chat/abc.png", target.StoredName)
	require.Equal(t, int64(600), target.ExpiresIn)
}

func TestRegisterUpload_AnonymousHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("x-auth-token"))
		require.Empty(t, r.Header.Get("x-session-id"))
		require.Equal(t, "application/json, */*", r.Header.Get("Accept"))
		json.NewEncoder(w).Encode(map[string]any{"url": "https://s.example.com/x"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.RegisterUpload(context.Background(), models.UploadMetadata{}, models.AuthContext{})
	require.NoError(t, err)
}

func TestRegisterUpload_MissingTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Contract violation: 200 but no storage-target URL.
		json.NewEncoder(w).Encode(map[string]any{"expiresIn": 600})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.RegisterUpload(context.Background(), models.UploadMetadata{}, testAuth)
	require.True(t, errors.Is(err, common.ErrNoUploadTarget))
}

func TestRegisterUpload_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.RegisterUpload(context.Background(), models.UploadMetadata{}, testAuth)
	require.True(t, errors.Is(err, common.ErrAuthenticationExpired))
}

func TestRegisterUpload_ServerMessagePreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "filename required"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.RegisterUpload(context.Background(), models.UploadMetadata{}, testAuth)

	var se *common.StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusBadRequest, se.StatusCode)
	require.Equal(t, "filename required", se.Message)
}

func TestPutObject_Success(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 2048)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "image/png", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Len(t, body, len(payload))
	}))
	defer srv.Close()

	var seen []int
	c := NewHTTPClient("", 5*time.Second)
	err := c.PutObject(context.Background(), srv.URL, "image/png",
		bytes.NewReader(payload), int64(len(payload)), func(pct int) { seen = append(seen, pct) })
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		require.GreaterOrEqual(t, seen[i], seen[i-1])
	}
	require.Equal(t, 100, seen[len(seen)-1])
}

func TestPutObject_RejectedByTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewHTTPClient("", 5*time.Second)
	err := c.PutObject(context.Background(), srv.URL, "image/png",
		strings.NewReader("abc"), 3, nil)

	var se *common.StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusForbidden, se.StatusCode)
}

func TestFetchObject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c := NewHTTPClient("", 5*time.Second)
	body, contentType, err := c.FetchObject(context.Background(), srv.URL+"/chat/abc.png")
	require.NoError(t, err)
	defer body.Close()

	require.Equal(t, "image/png", contentType)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))
}

func TestFetchObject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewHTTPClient("", 5*time.Second)
	_, _, err := c.FetchObject(context.Background(), srv.URL+"/chat/missing.png")

	var se *common.StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestProgressReader_ZeroTotal(t *testing.T) {
	called := false
	pr := newProgressReader(strings.NewReader("abc"), 0, func(int) { called = true })
	_, err := io.ReadAll(pr)
	require.NoError(t, err)
	require.False(t, called)
}
