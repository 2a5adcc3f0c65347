package providers

import (
	"errors"
	"fmt"
)

// Sentinel errors callers can test with errors.Is. Every failure returned by a provider
// wraps exactly one of these.
var (
	ErrTransportUnavailable = errors.New("transport unavailable")
	ErrNoData               = errors.New("no data returned")
	ErrDecode               = errors.New("unable to decode response")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrAuthentication       = errors.New("authentication error")
	ErrBadRequest           = errors.New("bad request")
	ErrOutdatedRequest      = errors.New("outdated request")
	ErrFailedRequest        = errors.New("request failed")
)

// TransportError captures a request that never produced an HTTP response.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Operation, ErrTransportUnavailable)
	}
	return fmt.Sprintf("%s: %s: %v", e.Operation, ErrTransportUnavailable, e.Err)
}

// Is reports ErrTransportUnavailable so callers need not know the concrete type.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransportUnavailable
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError captures a non-success HTTP status bucketed by Classify.
type StatusError struct {
	Operation  string
	StatusCode int
	Outcome    Outcome
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s (status=%d)", e.Operation, e.Outcome.Err(), e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Outcome.Err()
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// InvalidParameterError is returned before any request is issued when a parameter is out of range.
type InvalidParameterError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	msg := fmt.Sprintf("%s: %s=%q", ErrInvalidParameter, e.Name, e.Value)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// AsInvalidParameterError attempts to unwrap an error into an InvalidParameterError.
func AsInvalidParameterError(err error) (*InvalidParameterError, bool) {
	var paramErr *InvalidParameterError
	if errors.As(err, &paramErr) {
		return paramErr, true
	}
	return nil, false
}
