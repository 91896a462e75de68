package domain

import (
	"errors"
	"fmt"
)

// Machine-readable error kinds surfaced to API clients.
const (
	KindNotFound              = "NOT_FOUND"
	KindInvalidArgument       = "INVALID_ARGUMENT"
	KindInsufficientStock     = "INSUFFICIENT_STOCK"
	KindCartEmpty             = "CART_EMPTY"
	KindDuplicateField        = "DUPLICATE_FIELD"
	KindOrderProcessingFailed = "ORDER_PROCESSING_FAILED"
	KindUnauthorized          = "UNAUTHORIZED"
	KindForbidden             = "FORBIDDEN"
	KindInternal              = "SERVER_ERROR"
)

// Error carries a machine-readable kind alongside a human-readable message.
// The wrapped cause, if any, stays server-side and never crosses the API
// boundary.
type Error struct {
	Kind    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func E(kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Ef(kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func WrapErr(kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, or KindInternal for plain errors.
func KindOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsKind(err error, kind string) bool {
	return KindOf(err) == kind
}
