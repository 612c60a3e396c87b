package errs

import "errors"

// Cross-cutting sentinels raised by HTTP middleware
var (
	ErrUnauthenticated = errors.New("owner token missing or invalid")
	ErrRateLimited     = errors.New("too many requests")
)
