// Package term probes the controlling terminal's width, backing an
// optional auto-width table option (boxtable.WithMaxWidth(term.Width())).
package term

import (
	"os"

	"github.com/olekukonko/ts"
	xterm "golang.org/x/term"
)

// DefaultWidth is used when no terminal width can be determined at all
// (output redirected to a file or pipe, and the ts fallback also fails).
const DefaultWidth = 80

// Width returns the current width of the process's stdout, trying
// golang.org/x/term first (the POSIX ioctl path) and falling back to
// olekukonko/ts (which also covers older/uncommon platforms) before
// giving up and returning DefaultWidth.
func Width() int {
	fd := int(os.Stdout.Fd())
	if xterm.IsTerminal(fd) {
		if w, _, err := xterm.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if size, err := ts.GetSize(); err == nil {
		if w := size.Col(); w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// IsTerminal reports whether stdout is attached to a terminal, the way a
// caller decides whether to probe Width at all versus using a fixed budget
// for redirected/piped output.
func IsTerminal() bool {
	return xterm.IsTerminal(int(os.Stdout.Fd()))
}
