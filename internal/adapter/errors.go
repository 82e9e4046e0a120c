package adapter

import "errors"

// ErrBreachCheckFailure wraps every recoverable fault of a breach lookup.
var ErrBreachCheckFailure = errors.New("breach check failed")

// HTTP status errors produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// errMalformedRange is returned for a response line that is not SUFFIX:COUNT.
var errMalformedRange = errors.New("malformed range response")
