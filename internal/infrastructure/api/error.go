package api

import "fmt"

// ErrorKind classifies client failures so callers can branch on kind
// instead of parsing message text.
type ErrorKind int

const (
	// KindNetwork means the transport never produced a response.
	KindNetwork ErrorKind = iota
	// KindAuth means the backend rejected the credentials or session.
	KindAuth
	// KindHTTP is any other non-success status.
	KindHTTP
	// KindProtocol means a success response carried an unparsable body.
	KindProtocol
)

// Error is the uniform failure returned by the client.
type Error struct {
	Kind       ErrorKind
	Status     int
	StatusText string
	Detail     string
	cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("backend unreachable: %s", e.Detail)
	case KindProtocol:
		return fmt.Sprintf("malformed response: %s", e.Detail)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%d %s - %s", e.Status, e.StatusText, e.Detail)
		}
		return fmt.Sprintf("%d %s", e.Status, e.StatusText)
	}
}

// Unwrap exposes the underlying transport or decode error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsAuth reports whether err is an api.Error of kind KindAuth.
func IsAuth(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == KindAuth
}
