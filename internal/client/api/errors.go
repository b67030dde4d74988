package api

import "errors"

// Sentinel errors mapped from HTTP responses. Callers match them with
// errors.Is to decide whether a failure is fatal.
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)
