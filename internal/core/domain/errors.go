package domain

import (
	"errors"
)

type ErrorKind int

const (
	KindUnhandled ErrorKind = iota
	KindValidation
	KindMalformed
	KindInvalidArgument
	KindConflict
	KindNotFound
	KindStorage
)

// Error is the typed failure every service and repository returns. The
// HTTP layer matches the kind exactly once to pick a status code.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func ValidationFailed(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Malformed(msg string) *Error {
	return &Error{Kind: KindMalformed, Message: msg}
}

func InvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func StorageUnavailable(msg string) *Error {
	return &Error{Kind: KindStorage, Message: msg}
}

// KindOf extracts the kind from any error; anything untyped is unhandled.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnhandled
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}
