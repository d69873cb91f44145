package cli

import (
	"fmt"

	"github.com/osadchiy/chatfiles/internal/client/fileurl"
)

func (a *App) showURL(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "usage: url <name> [view|download]")
		return
	}
	name := args[0]

	if len(args) > 1 && args[1] == "view" {
		fmt.Fprintln(a.out, fileurl.PreviewURL(a.config.APIBaseURL, name, a.auth, true))
		return
	}
	fmt.Fprintln(a.out, fileurl.FileURL(a.config.APIBaseURL, name, false))
}
