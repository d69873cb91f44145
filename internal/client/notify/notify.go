// Package notify declares the user-facing notification collaborator that
// validation and transfer failures are reported to. The rendering channel
// (toast, status bar, terminal) is the caller's concern.
package notify

import (
	"fmt"
	"io"
)

// Notifier receives user-presentable failure messages.
type Notifier interface {
	Error(message string)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string)

func (f Func) Error(message string) { f(message) }

// Nop discards all notifications.
type Nop struct{}

func (Nop) Error(string) {}

// Writer prints notifications to w, one per line. Used by the CLI.
type Writer struct {
	W io.Writer
}

func (n *Writer) Error(message string) {
	fmt.Fprintf(n.W, "error: %s\n", message)
}
