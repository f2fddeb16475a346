package apperr_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/markis/lai/internal/apperr"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	t.Parallel()
	err := apperr.New(apperr.KindIO, "failed to read stdin", io.ErrUnexpectedEOF)
	want := "failed to read stdin: unexpected EOF"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatal("cause should be reachable through Unwrap")
	}
}

func TestKindOfWrappedError(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("running: %w", apperr.NewUsage("Invalid option -x"))
	if got := apperr.KindOf(err); got != apperr.KindUsage {
		t.Fatalf("want %q, got %q", apperr.KindUsage, got)
	}
	if !apperr.IsUsage(err) {
		t.Fatal("IsUsage should see through wrapping")
	}
}

func TestKindOfPlainError(t *testing.T) {
	t.Parallel()
	if got := apperr.KindOf(errors.New("boom")); got != apperr.KindInternal {
		t.Fatalf("want %q, got %q", apperr.KindInternal, got)
	}
}

func TestVerbatim(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("wrapped: %w", apperr.NewVerbatim(apperr.KindUsage, "Invalid option -x"))
	if !apperr.IsVerbatim(err) {
		t.Fatal("IsVerbatim should see through wrapping")
	}
	if !apperr.IsUsage(err) {
		t.Fatal("kind should be kept")
	}
	if apperr.IsVerbatim(apperr.NewUsage("Prompt (-p) is required.")) {
		t.Fatal("NewUsage errors are prefixed")
	}
	if apperr.IsVerbatim(errors.New("plain")) {
		t.Fatal("plain errors are prefixed")
	}
}
