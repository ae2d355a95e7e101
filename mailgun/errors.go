package mailgun

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMessageID is returned when a stored message is requested without a key.
	ErrMissingMessageID = errors.New("mailgun: message id is required")

	// ErrForeignPageURL is returned when a paging URL does not point at the
	// client's own endpoints.
	ErrForeignPageURL = errors.New("mailgun: page url is not on a configured endpoint")
)

// TransportError is a failure before a response body was fully received:
// connection, TLS, DNS, timeout or cancellation.
type TransportError struct {
	Method string
	// URL is redacted and never carries the API key.
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mailgun: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the provider answered but the body could not be
// decoded into the requested type. StatusCode lets callers tell a provider
// error payload apart from a schema mismatch.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mailgun: decoding response (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether err is or wraps a *DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
