package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"

	"github.com/felixgeelhaar/jsonrpc-go/dispatch"
	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// RateLimitOption configures the rate limiter.
type RateLimitOption func(*rateLimitConfig)

type rateLimitConfig struct {
	keyFunc func(context.Context, *protocol.Request) string
	logger  Logger
}

// WithRateLimitKeyFunc sets a function to derive the rate limit bucket key.
// The context carries transport metadata (protocol.RequestMetaFromContext),
// so keys can be built from connection details as well as the request.
func WithRateLimitKeyFunc(fn func(context.Context, *protocol.Request) string) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.keyFunc = fn
	}
}

// WithRateLimitLogger sets the logger for rate limit events.
func WithRateLimitLogger(l Logger) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.logger = l
	}
}

// RateLimit returns middleware that limits request rate using a token
// bucket algorithm. The rate is specified as requests per second; burst
// allows short bursts above the rate limit. Rejected requests receive a
// rate limited error response (-32003).
func RateLimit(rate int, burst int, opts ...RateLimitOption) dispatch.Middleware {
	cfg := &rateLimitConfig{
		keyFunc: func(context.Context, *protocol.Request) string { return "global" },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := ratelimit.New(&ratelimit.Config{
		Rate:     rate,
		Burst:    burst,
		Interval: time.Second,
	})

	return func(next dispatch.Invoker) dispatch.Invoker {
		return func(ctx context.Context, req *protocol.Request) (any, error) {
			key := cfg.keyFunc(ctx, req)

			if !limiter.Allow(ctx, key) {
				if cfg.logger != nil {
					cfg.logger.Warn("rate limit exceeded",
						Field{Key: "method", Value: req.Method},
						Field{Key: "key", Value: key},
					)
				}
				return nil, protocol.NewRateLimited("rate limit exceeded")
			}

			return next(ctx, req)
		}
	}
}

// RateLimitByMethod returns rate limiting middleware that applies per-method limits.
func RateLimitByMethod(rate int, burst int, opts ...RateLimitOption) dispatch.Middleware {
	allOpts := append([]RateLimitOption{
		WithRateLimitKeyFunc(func(_ context.Context, req *protocol.Request) string {
			return req.Method
		}),
	}, opts...)
	return RateLimit(rate, burst, allOpts...)
}

// RateLimitByClient returns rate limiting middleware that applies per-client
// limits. The clientIDFunc derives a client identifier, typically from the
// transport metadata on the context or from the request itself.
func RateLimitByClient(rate int, burst int, clientIDFunc func(context.Context, *protocol.Request) string, opts ...RateLimitOption) dispatch.Middleware {
	allOpts := append([]RateLimitOption{
		WithRateLimitKeyFunc(clientIDFunc),
	}, opts...)
	return RateLimit(rate, burst, allOpts...)
}
