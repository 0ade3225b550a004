package errors

// Outbound HTTP helpers for mapping transport failures and remote statuses to project ErrorCode and retry semantics

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"
)

// StatusError is a non-2xx answer from a remote service
type StatusError struct {
	Status int
	Body   string
	Header http.Header
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// HTTPStatus returns the remote status
func (e *StatusError) HTTPStatus() int { return e.Status }

// StatusOf returns the remote status carried anywhere in the chain, or 0
func StatusOf(err error) int {
	var se *StatusError
	if stderrs.As(err, &se) {
		return se.Status
	}
	return 0
}

// RemoteStatusCode maps a remote HTTP status to an ErrorCode
func RemoteStatusCode(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound || status == http.StatusGone:
		return ErrorCodeNotFound
	case status == http.StatusTooManyRequests:
		return ErrorCodeTooManyRequests
	case status == http.StatusUnauthorized:
		return ErrorCodeUnauthorized
	case status == http.StatusForbidden:
		return ErrorCodeForbidden
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeUpstream
	}
}

// TransportErrorCode classifies an outbound failure with an ok flag
// !ok means err carried no transport signal; caller may fall back to generic handling
func TransportErrorCode(err error) (ErrorCode, bool) {
	if err == nil {
		return ErrorCodeUnknown, false
	}
	if s := StatusOf(err); s != 0 {
		return RemoteStatusCode(s), true
	}
	if stderrs.Is(err, context.DeadlineExceeded) {
		return ErrorCodeTimeout, true
	}
	var ne net.Error
	if stderrs.As(err, &ne) {
		if ne.Timeout() {
			return ErrorCodeTimeout, true
		}
		return ErrorCodeUpstream, true
	}
	var dns *net.DNSError
	if stderrs.As(err, &dns) {
		return ErrorCodeUpstream, true
	}
	return ErrorCodeUnknown, false
}

// FromTransport wraps an outbound failure with a mapped ErrorCode and message.
// If err is nil, returns nil
func FromTransport(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := TransportErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeUpstream, msg)
}

// FromTransportf is the formatted variant of FromTransport
func FromTransportf(err error, format string, a ...any) error {
	return FromTransport(err, fmt.Sprintf(format, a...))
}

// IsRetryable reports whether an outbound failure is transient and worth retrying
// local cancellations and deadlines are never retried; the caller gave up
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	}
	if s := StatusOf(err); s != 0 {
		c := RemoteStatusCode(s)
		return c == ErrorCodeUnavailable || c == ErrorCodeTooManyRequests
	}
	var ne net.Error
	if stderrs.As(err, &ne) {
		return ne.Timeout()
	}
	return false
}
