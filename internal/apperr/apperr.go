package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the CLI can choose how to report it.
type Kind string

const (
	KindUsage      Kind = "usage"
	KindIO         Kind = "io"
	KindTransport  Kind = "transport"
	KindHTTPStatus Kind = "http_status"
	KindParse      Kind = "parse"
	KindSchema     Kind = "schema"
	KindInternal   Kind = "internal"
)

// AppError is the single error type surfaced to the CLI. A Verbatim error
// is printed as-is, without the "Error:" prefix.
type AppError struct {
	Kind     Kind
	Message  string
	Cause    error
	Verbatim bool
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func New(kind Kind, message string, cause error) error {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// NewVerbatim returns an error whose message is already a full diagnostic.
func NewVerbatim(kind Kind, message string) error {
	return &AppError{
		Kind:     kind,
		Message:  message,
		Verbatim: true,
	}
}

func NewUsage(message string) error {
	return New(KindUsage, message, nil)
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsUsage(err error) bool {
	return KindOf(err) == KindUsage
}

func IsVerbatim(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Verbatim
}
