// Package apperror carries a classification across the service/handler
// boundary so one place can translate failures into HTTP status codes.
package apperror

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
	KindUpstream
)

// Error is a classified error. The message is safe to show to clients;
// any wrapped cause stays server-side.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Kind() Kind    { return e.kind }

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap attaches a classification and client-safe message to an
// underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func Validation(msg string) *Error { return New(KindValidation, msg) }
func Auth(msg string) *Error       { return New(KindAuth, msg) }
func NotFound(msg string) *Error   { return New(KindNotFound, msg) }
func Conflict(msg string) *Error   { return New(KindConflict, msg) }

// KindOf reports the classification of err, or KindInternal when err was
// never classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
