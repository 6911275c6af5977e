// Package apperr carries the error taxonomy the public entry points translate
// into tagged JSON results. Nothing in this service throws an error across the
// HTTP boundary; controllers map the Kind here to a status + user message.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindInternal Kind = iota
	KindConfiguration
	KindStorage
	KindEmptyReport
	KindNotification
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "CONFIGURATION"
	case KindStorage:
		return "STORAGE"
	case KindEmptyReport:
		return "EMPTY_REPORT"
	case KindNotification:
		return "NOTIFICATION"
	default:
		return "INTERNAL"
	}
}

// Error pairs a localized user message with the internal diagnostic. The user
// message is what crosses the boundary; Err stays in the logs.
type Error struct {
	Kind    Kind
	UserMsg string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, userMsg string, err error) *Error {
	return &Error{Kind: kind, UserMsg: userMsg, Err: err}
}

func Configuration(userMsg string, err error) *Error {
	return New(KindConfiguration, userMsg, err)
}

func Storage(userMsg string, err error) *Error {
	return New(KindStorage, userMsg, err)
}

func EmptyReport(userMsg string, err error) *Error {
	return New(KindEmptyReport, userMsg, err)
}

func Notification(userMsg string, err error) *Error {
	return New(KindNotification, userMsg, err)
}

func Internal(userMsg string, err error) *Error {
	return New(KindInternal, userMsg, err)
}

// KindOf unwraps err down to an *Error, defaulting to KindInternal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// UserMessage returns the localized message for err, or fallback when err is
// not an *Error (raw errors never reach the user verbatim).
func UserMessage(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) && ae.UserMsg != "" {
		return ae.UserMsg
	}
	return fallback
}

// HTTPStatus maps a kind to the status the envelope is sent with.
// EmptyReport is a user-facing "no data" outcome, not a server failure.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindConfiguration:
		return fiber.StatusServiceUnavailable
	case KindStorage:
		return fiber.StatusBadGateway
	case KindEmptyReport:
		return fiber.StatusNotFound
	case KindNotification:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
