package fileurl

import (
	"net/url"
	"testing"

	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/client/policy"
	"github.com/osadchiy/chatfiles/internal/filex"
	"github.com/stretchr/testify/require"
)

const base = "https://api.example.com"

func TestFileURL(t *testing.T) {
	require.Equal(t, base+"/api/files/download/a.png", FileURL(base, "a.png", false))
	require.Equal(t, base+"/api/files/view/a.png", FileURL(base, "a.png", true))
	require.Equal(t, "", FileURL(base, "", false))
}

func TestPreviewURL_WithAuth(t *testing.T) {
	auth := models.AuthContext{Token: "tok/+1", SessionID: "sess 1"}

	got := PreviewURL(base, "a.png", auth, true)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "/api/files/view/a.png", u.Path)
	require.Equal(t, "tok/+1", u.Query().Get("token"))
	require.Equal(t, "sess 1", u.Query().Get("sessionId"))
}

func TestPreviewURL_NoAuth(t *testing.T) {
	full := models.AuthContext{Token: "t", SessionID: "s"}
	partial := models.AuthContext{Token: "t"}

	// withAuth false, or either credential missing, yields the bare URL.
	require.Equal(t, base+"/api/files/view/a.png", PreviewURL(base, "a.png", full, false))
	require.Equal(t, base+"/api/files/view/a.png", PreviewURL(base, "a.png", partial, true))
	require.Equal(t, "", PreviewURL(base, "", full, true))
}

func TestFileType(t *testing.T) {
	require.Equal(t, "image", FileType("photo.PNG"))
	require.Equal(t, "document", FileType("paper.pdf"))
	require.Equal(t, TypeUnknown, FileType("archive.zip"))
	require.Equal(t, TypeUnknown, FileType(""))
}

func TestFileType_RoundTripOverPolicy(t *testing.T) {
	for _, c := range policy.Table {
		for _, ext := range c.Extensions {
			name := "sample" + ext
			require.Equal(t, c.Key, FileType(name))
			require.Equal(t, ext, filex.FileExtension(name))
		}
	}
}
