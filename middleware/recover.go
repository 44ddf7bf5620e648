package middleware

import (
	"context"

	"github.com/felixgeelhaar/jsonrpc-go/dispatch"
	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// PanicHandler is called when a panic is recovered.
type PanicHandler func(ctx context.Context, req *protocol.Request, panicVal any) (any, error)

// RecoverOption configures the Recover middleware.
type RecoverOption func(*recoverConfig)

type recoverConfig struct {
	logger Logger
}

// WithRecoverLogger records recovered panic values through the given logger.
func WithRecoverLogger(l Logger) RecoverOption {
	return func(c *recoverConfig) {
		c.logger = l
	}
}

// Recover returns middleware that catches panics and converts them to an
// internal error carrying the same generic message a panicking handler
// produces without middleware. The panic value never reaches the wire;
// pass WithRecoverLogger to record it.
func Recover(opts ...RecoverOption) dispatch.Middleware {
	cfg := &recoverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return RecoverWithHandler(func(_ context.Context, req *protocol.Request, panicVal any) (any, error) {
		if cfg.logger != nil {
			cfg.logger.Error("recovered panic in handler",
				Field{Key: "method", Value: req.Method},
				Field{Key: "panic", Value: panicVal},
			)
		}
		return nil, protocol.NewInternalError("An error occurred when handling request")
	})
}

// RecoverWithHandler returns middleware that catches panics and calls the
// provided handler. This allows for custom panic handling such as alerting,
// or mapping specific panics to protocol errors.
func RecoverWithHandler(handler PanicHandler) dispatch.Middleware {
	return func(next dispatch.Invoker) dispatch.Invoker {
		return func(ctx context.Context, req *protocol.Request) (result any, err error) {
			defer func() {
				if r := recover(); r != nil {
					result, err = handler(ctx, req, r)
				}
			}()
			return next(ctx, req)
		}
	}
}
