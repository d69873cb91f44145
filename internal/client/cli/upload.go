package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/common"
	"github.com/osadchiy/chatfiles/internal/filex"
)

// upload starts a background upload for the file at args[0]. Running in the
// background keeps the prompt responsive so cancel/cancelall remain usable
// while bytes are moving.
func (a *App) upload(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "usage: upload <path>")
		return
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "cannot open %s: %v\n", path, err)
		return
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		fmt.Fprintf(a.out, "cannot stat %s: %v\n", path, err)
		return
	}

	name := filepath.Base(path)
	file := &models.CandidateFile{
		Name:     name,
		MimeType: mimeTypeFor(name),
		Size:     st.Size(),
		Data:     f,
	}

	fmt.Fprintf(a.out, "uploading %s (%s)\n", name, filex.FormatSize(file.Size))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer f.Close()

		res, err := a.uploads.Upload(ctx, file, a.auth, func(pct int) {
			fmt.Fprintf(a.out, "%s: %d%%\n", name, pct)
		})
		if errors.Is(err, common.ErrAuthenticationExpired) {
			fmt.Fprintln(a.out, "session expired, please log in again")
			return
		}
		if err != nil {
			fmt.Fprintf(a.out, "%s: %v\n", name, err)
			return
		}
		if !res.OK {
			fmt.Fprintf(a.out, "%s: upload failed: %s\n", name, res.Message)
			return
		}
		fmt.Fprintf(a.out, "%s: stored as %s\n", name, res.File.StoredName)
	}()
}

// mimeTypeFor derives a content type from the filename extension, falling
// back to a generic binary type.
func mimeTypeFor(name string) string {
	mt := mime.TypeByExtension(filex.FileExtension(name))
	if mt == "" {
		return "application/octet-stream"
	}
	if base, _, ok := strings.Cut(mt, ";"); ok {
		return strings.TrimSpace(base)
	}
	return mt
}
