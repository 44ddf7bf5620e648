package dispatch

import (
	"context"

	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// Invoker executes a validated request and returns its raw result. It is
// the unit middleware wraps: the dispatcher validates the envelope and
// normalizes errors on either side of it.
type Invoker func(ctx context.Context, req *protocol.Request) (any, error)

// Middleware wraps an Invoker with additional behavior.
type Middleware func(next Invoker) Invoker

// Chain composes middleware in order, executing first middleware first.
func Chain(middlewares ...Middleware) Middleware {
	return func(final Invoker) Invoker {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
