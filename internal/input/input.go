package input

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/markis/lai/internal/apperr"
	"github.com/markis/lai/internal/term"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Read returns all of r as text when r is piped or redirected. When the
// terminal is interactive nothing is read and the result is empty.
func Read(r io.Reader, tty term.Terminal) (string, error) {
	if tty != nil && tty.IsInteractive() {
		return "", nil
	}
	if r == nil {
		return "", nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", apperr.New(apperr.KindIO, "failed to read stdin", err)
	}
	if !utf8.Valid(data) {
		return "", apperr.New(apperr.KindIO, "failed to read stdin", errInvalidUTF8)
	}

	return string(data), nil
}
