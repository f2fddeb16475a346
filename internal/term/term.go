// Package term reports whether standard streams are attached to a terminal.
package term

import "github.com/mattn/go-isatty"

// Terminal reports whether a stream is attached to an interactive terminal.
type Terminal interface {
	IsInteractive() bool
}

// TerminalFunc adapts a plain function to Terminal.
type TerminalFunc func() bool

func (f TerminalFunc) IsInteractive() bool { return f() }

// File checks the terminal state of a file descriptor such as
// os.Stdin.Fd(). Cygwin and MSYS ptys count as terminals.
func File(fd uintptr) Terminal {
	return TerminalFunc(func() bool {
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	})
}
