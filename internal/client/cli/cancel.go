package cli

import "fmt"

func (a *App) cancel(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "usage: cancel <name>")
		return
	}
	if a.uploads.Cancel(args[0]) {
		fmt.Fprintf(a.out, "canceled %s\n", args[0])
	} else {
		fmt.Fprintf(a.out, "no upload in flight for %s\n", args[0])
	}
}

func (a *App) cancelAll() {
	n := a.uploads.CancelAll()
	fmt.Fprintf(a.out, "canceled %d upload(s)\n", n)
}
