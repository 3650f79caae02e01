package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusNetwork is the status marker carried by transport-level failures.
// It is not an HTTP status: it means the request never produced a usable
// server response.
const StatusNetwork = 0

// FieldError is one server-side validation failure, keyed by input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single failure type raised by the REST transport and the
// services built on it. Status discriminates the class of failure:
//
//   - StatusNetwork: the transport itself failed (unreachable host,
//     malformed body). Never carries field errors.
//   - any HTTP status: the server answered with a non-success code.
//     Fields holds per-field validation errors when the server sent them.
//   - http.StatusInternalServerError via MissingData: the envelope was
//     successful but the expected payload was absent — a client-side
//     contract violation, not a server error.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if e.Status == StatusNetwork {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// JoinFields renders the field errors as a single user-displayable
// string. Returns the plain message when no field errors are present.
func (e *Error) JoinFields() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}

// NetworkError wraps a transport failure. The cause is folded into the
// message; callers only ever branch on Status.
func NetworkError(cause error) *Error {
	msg := "please check your connection"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Status: StatusNetwork, Message: msg}
}

// MissingData reports a successful envelope whose data payload was
// absent where the caller required one.
func MissingData(what string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: what}
}

// Unauthorized reports a locally detected missing-credential condition
// without a network round trip.
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// StatusOf extracts the status marker from err, or -1 if err is not an
// *Error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

// IsForbidden reports whether err is a confirmed authorization denial
// (HTTP 403). Only this status means "authenticated, but not allowed";
// every other failure is indeterminate.
func IsForbidden(err error) bool {
	return StatusOf(err) == http.StatusForbidden
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	return StatusOf(err) == StatusNetwork
}
