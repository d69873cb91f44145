package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Run starts the read–eval–print loop. It exits on EOF or when the user
// types "exit" or "quit"; in-flight uploads are canceled and drained first.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "chatfiles client (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprint(a.out, "cf> ")
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "upload":
			a.upload(ctx, args)
		case "download":
			a.download(ctx, args)
		case "cancel":
			a.cancel(args)
		case "cancelall":
			a.cancelAll()
		case "history":
			a.showHistory(ctx)
		case "url":
			a.showURL(args)
		case "exit", "quit":
			a.shutdown()
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
	a.shutdown()
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Available commands:")
	fmt.Fprintln(a.out, "  upload <path>                 upload a file")
	fmt.Fprintln(a.out, "  download <name> [saved-name]  download a stored file")
	fmt.Fprintln(a.out, "  cancel <name>                 cancel an in-flight upload")
	fmt.Fprintln(a.out, "  cancelall                     cancel all in-flight uploads")
	fmt.Fprintln(a.out, "  history                       list completed uploads")
	fmt.Fprintln(a.out, "  url <name> [view|download]    print the file's URL")
	fmt.Fprintln(a.out, "  exit                          quit")
}

func (a *App) shutdown() {
	if n := a.uploads.CancelAll(); n > 0 {
		fmt.Fprintf(a.out, "canceled %d upload(s)\n", n)
	}
	a.wg.Wait()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "error closing database", "error", err)
		}
	}
}
