package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/jsonrpc-go/dispatch"
	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// Timeout returns middleware that enforces a per-request deadline. The
// dispatcher core imposes no timeout of its own; this is how an embedding
// application bounds handler execution. If the handler does not complete
// within the specified duration, the context is cancelled and handlers that
// honor it return context.DeadlineExceeded.
func Timeout(d time.Duration) dispatch.Middleware {
	return func(next dispatch.Invoker) dispatch.Invoker {
		return func(ctx context.Context, req *protocol.Request) (any, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, req)
		}
	}
}
