package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/osadchiy/chatfiles/internal/common"
)

func (a *App) download(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "usage: download <name> [saved-name]")
		return
	}
	storedName := args[0]
	suggested := ""
	if len(args) > 1 {
		suggested = args[1]
	}

	res, err := a.downloads.Download(ctx, storedName, suggested)
	if errors.Is(err, common.ErrAuthenticationExpired) {
		fmt.Fprintln(a.out, "session expired, please log in again")
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", storedName, err)
		return
	}
	if !res.OK {
		fmt.Fprintf(a.out, "%s: download failed: %s\n", storedName, res.Message)
		return
	}
	fmt.Fprintf(a.out, "saved to %s\n", res.SavedPath)
}
