package cli

import (
	"context"
	"fmt"

	"github.com/osadchiy/chatfiles/internal/client/fileurl"
	"github.com/osadchiy/chatfiles/internal/filex"
)

const historyListLimit = 50

func (a *App) showHistory(ctx context.Context) {
	recs, err := a.history.List(ctx, historyListLimit)
	if err != nil {
		fmt.Fprintf(a.out, "cannot read history: %v\n", err)
		return
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "no uploads recorded")
		return
	}

	for _, r := range recs {
		fmt.Fprintf(a.out, "%s  %-10s %-10s %s -> %s\n",
			r.UploadedAt.Format("2006-01-02 15:04"),
			fileurl.FileType(r.OriginalName),
			filex.FormatSize(r.Size),
			r.OriginalName, r.StoredName)
	}
}
