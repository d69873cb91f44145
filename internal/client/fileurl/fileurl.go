// Package fileurl computes the preview/download/view URLs exposed to
// callers, and the extension-based file-type lookup backing them. All
// functions are pure.
package fileurl

import (
	"fmt"
	"net/url"

	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/client/policy"
	"github.com/osadchiy/chatfiles/internal/filex"
)

// TypeUnknown is returned by FileType for names outside every policy
// category.
const TypeUnknown = "unknown"

// FileURL returns the API URL serving the named file, selecting the view
// endpoint for previews and the download endpoint otherwise. Empty name
// yields "".
func FileURL(apiBaseURL, name string, forPreview bool) string {
	if name == "" {
		return ""
	}
	endpoint := "download"
	if forPreview {
		endpoint = "view"
	}
	return fmt.Sprintf("%s/api/files/%s/%s", apiBaseURL, endpoint, name)
}

// PreviewURL returns the view URL for storedName, with the token and session
// id appended as percent-encoded query parameters. The credentials are
// attached only when withAuth is set and both values are present.
func PreviewURL(apiBaseURL, storedName string, auth models.AuthContext, withAuth bool) string {
	if storedName == "" {
		return ""
	}

	base := fmt.Sprintf("%s/api/files/view/%s", apiBaseURL, storedName)
	if !withAuth || !auth.Present() {
		return base
	}

	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("token", auth.Token)
	q.Set("sessionId", auth.SessionID)
	u.RawQuery = q.Encode()
	return u.String()
}

// FileType classifies a filename by extension against the policy table,
// independent of MIME sniffing. Returns the category key or TypeUnknown.
func FileType(name string) string {
	if name == "" {
		return TypeUnknown
	}
	if c, ok := policy.CategoryByExtension(filex.FileExtension(name)); ok {
		return c.Key
	}
	return TypeUnknown
}
