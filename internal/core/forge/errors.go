package forge

import (
	stderrs "errors"
	"net/http"

	perr "forgeapi/internal/platform/errors"
	"forgeapi/internal/platform/logger"
)

// ErrorKind is the closed forge failure taxonomy
type ErrorKind uint8

const (
	// RequestError is a failure talking to a remote forge after host and kind were resolved
	RequestError ErrorKind = iota + 1

	// EndpointUnavailable means the forge or the operation is not supported
	EndpointUnavailable

	// NoFlagshipInstance means no host was given and the kind has no configured flagship
	NoFlagshipInstance
)

// wire messages are part of the public contract, do not edit
const (
	msgRequestError        = "error communicating with the remote server"
	msgEndpointUnavailable = "endpoint not available for this forge"
	msgNoFlagshipInstance  = "flagship instance unavailable for this forge"
)

// String returns the variant name
func (k ErrorKind) String() string {
	switch k {
	case RequestError:
		return "RequestError"
	case EndpointUnavailable:
		return "EndpointUnavailable"
	case NoFlagshipInstance:
		return "NoFlagshipInstance"
	default:
		return "Unknown"
	}
}

// Error is a forge failure. Only RequestError carries a cause
type Error struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return "forge: " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "forge: " + e.Kind.String()
}

// Unwrap returns the transport cause, if any
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same Kind so callers can use errors.Is(err, ErrEndpointUnavailable)
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrs.As(target, &t) {
		return false
	}
	return t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons
var (
	ErrRequest             = &Error{Kind: RequestError}
	ErrEndpointUnavailable = &Error{Kind: EndpointUnavailable}
	ErrNoFlagshipInstance  = &Error{Kind: NoFlagshipInstance}
)

// NewRequestError wraps a transport failure
func NewRequestError(cause error) error { return &Error{Kind: RequestError, Err: cause} }

// KindOf returns the forge error kind of err
// anything that is not a forge error is treated as a RequestError
func KindOf(err error) ErrorKind {
	if err == nil {
		return 0
	}
	var e *Error
	if stderrs.As(err, &e) {
		return e.Kind
	}
	return RequestError
}

// normalize turns any adapter failure into a forge error
// typed forge errors pass through unchanged; everything else is a RequestError
func normalize(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrs.As(err, &e) {
		return e
	}
	return NewRequestError(err)
}

// HTTP maps a forge error to status and literal message
func HTTP(err error) (int, string) {
	switch KindOf(err) {
	case 0:
		return http.StatusOK, ""
	case EndpointUnavailable:
		return http.StatusNotFound, msgEndpointUnavailable
	case NoFlagshipInstance:
		return http.StatusNotFound, msgNoFlagshipInstance
	default:
		return http.StatusInternalServerError, msgRequestError
	}
}

// Wire converts a forge error into a project error that carries only the literal message
// the transport cause stays in the chain for logs and never reaches the wire
func Wire(err error) error {
	if err == nil {
		return nil
	}
	_, msg := HTTP(err)
	switch KindOf(err) {
	case EndpointUnavailable, NoFlagshipInstance:
		return perr.Wrap(err, perr.ErrorCodeNotFound, msg)
	default:
		return perr.Wrap(err, perr.ErrorCodeUpstream, msg)
	}
}

// Log reports err following the taxonomy policy
// EndpointUnavailable is expected capability variance and only shows up at debug
func Log(log *logger.Logger, err error) {
	if err == nil || log == nil {
		return
	}
	switch KindOf(err) {
	case EndpointUnavailable:
		log.Debug().Err(err).Msg("forge endpoint unavailable")
	case NoFlagshipInstance:
		log.Error().Err(err).Msg("forge flagship instance missing")
	default:
		log.Error().Err(err).Msg("forge request failed")
	}
}
