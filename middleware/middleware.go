package middleware

import (
	"time"

	"github.com/felixgeelhaar/jsonrpc-go/dispatch"
)

// DefaultStack returns the recommended production middleware stack.
// This includes panic recovery, request ID injection, and logging.
func DefaultStack(logger Logger) []dispatch.Middleware {
	return []dispatch.Middleware{
		Recover(WithRecoverLogger(logger)),
		RequestID(),
		Logging(logger),
	}
}

// DefaultStackWithTimeout returns the default stack with a timeout middleware.
func DefaultStackWithTimeout(logger Logger, timeout time.Duration) []dispatch.Middleware {
	return []dispatch.Middleware{
		Recover(WithRecoverLogger(logger)),
		RequestID(),
		Timeout(timeout),
		Logging(logger),
	}
}
