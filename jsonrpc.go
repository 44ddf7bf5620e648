// Package jsonrpc provides a transport-agnostic JSON-RPC 2.0 request
// dispatcher.
//
// The dispatcher accepts raw JSON text or already-decoded values, validates
// the envelope, routes each request to a registered handler, executes batch
// entries concurrently, and always produces well-formed JSON-RPC responses.
// Handler faults never escape as panics or malformed output.
//
// Basic usage:
//
//	d := jsonrpc.New()
//	d.Register(map[string]jsonrpc.HandlerFunc{
//	    "sum": func(ctx context.Context, params any) (any, error) {
//	        nums := params.([]any)
//	        total := 0.0
//	        for _, n := range nums {
//	            f, _ := n.(json.Number).Float64()
//	            total += f
//	        }
//	        return total, nil
//	    },
//	})
//
//	out := d.HandleJSON(ctx, []byte(`{"jsonrpc":"2.0","method":"sum","params":[1,2,3],"id":1}`))
//
// Serve over a transport:
//
//	jsonrpc.ServeStdio(ctx, d)
//	jsonrpc.ServeHTTP(ctx, d, ":8080")
package jsonrpc

import (
	"context"
	"time"

	"github.com/felixgeelhaar/jsonrpc-go/dispatch"
	"github.com/felixgeelhaar/jsonrpc-go/middleware"
	"github.com/felixgeelhaar/jsonrpc-go/protocol"
	"github.com/felixgeelhaar/jsonrpc-go/transport"
)

// Re-export core types for convenience

// Dispatcher routes JSON-RPC requests to registered handlers.
type Dispatcher = dispatch.Dispatcher

// Registry maps method names to handlers.
type Registry = dispatch.Registry

// HandlerFunc handles a single request's params and returns its result.
type HandlerFunc = dispatch.HandlerFunc

// FallbackFunc resolves methods that have no registered handler.
type FallbackFunc = dispatch.FallbackFunc

// Invoker executes a validated request.
type Invoker = dispatch.Invoker

// Middleware wraps an Invoker with cross-cutting behavior.
type Middleware = dispatch.Middleware

// Option configures a Dispatcher.
type Option = dispatch.Option

// Request is a validated JSON-RPC request envelope.
type Request = protocol.Request

// Response is a JSON-RPC response envelope.
type Response = protocol.Response

// Error is a JSON-RPC error object; handlers return it (or wrap it) to
// control the error serialized on the wire.
type Error = protocol.Error

// Logger is the structured logging interface used by the middleware stack.
type Logger = middleware.Logger

// LogField is a key-value pair for structured logging.
type LogField = middleware.Field

// Canonical JSON-RPC 2.0 error codes.
const (
	CodeParseError     = protocol.CodeParseError
	CodeInvalidRequest = protocol.CodeInvalidRequest
	CodeMethodNotFound = protocol.CodeMethodNotFound
	CodeInvalidParams  = protocol.CodeInvalidParams
	CodeInternalError  = protocol.CodeInternalError
	CodeRateLimited    = protocol.CodeRateLimited
)

// Error constructors re-exported for handlers.
var (
	NewError          = protocol.NewError
	NewInvalidParams  = protocol.NewInvalidParams
	NewInternalError  = protocol.NewInternalError
	NewMethodNotFound = protocol.NewMethodNotFound
)

// New creates a dispatcher with the given options.
func New(opts ...Option) *Dispatcher {
	return dispatch.New(opts...)
}

// NewWithDefaultStack creates a dispatcher wired with the recommended
// production middleware: panic recovery, request IDs, and logging.
func NewWithDefaultStack(logger Logger, opts ...Option) *Dispatcher {
	base := []Option{WithMiddleware(middleware.DefaultStack(logger)...)}
	return dispatch.New(append(base, opts...)...)
}

// WithMiddleware adds middleware to the dispatcher's invocation chain.
func WithMiddleware(m ...Middleware) Option {
	return dispatch.WithMiddleware(m...)
}

// WithRegistry sets a pre-populated method registry.
func WithRegistry(r *Registry) Option {
	return dispatch.WithRegistry(r)
}

// NewRegistry creates an empty method registry.
func NewRegistry() *Registry {
	return dispatch.NewRegistry()
}

// Transport options

// StdioOption configures the stdio transport.
type StdioOption = transport.StdioOption

// HTTPOption configures the HTTP transport.
type HTTPOption = transport.HTTPOption

// WebSocketOption configures the WebSocket transport.
type WebSocketOption = transport.WebSocketOption

// ServeStdio runs the dispatcher over stdin/stdout, one payload per line.
// This blocks until the context is canceled or input is exhausted.
func ServeStdio(ctx context.Context, d *Dispatcher, opts ...StdioOption) error {
	t := transport.NewStdio(opts...)
	return t.Serve(ctx, d)
}

// ServeHTTP runs the dispatcher over HTTP POST.
// This blocks until the context is canceled or an error occurs.
func ServeHTTP(ctx context.Context, d *Dispatcher, addr string, opts ...HTTPOption) error {
	t := transport.NewHTTP(addr, opts...)
	return t.Serve(ctx, d)
}

// ServeWebSocket runs the dispatcher over WebSocket connections.
// This blocks until the context is canceled or an error occurs.
func ServeWebSocket(ctx context.Context, d *Dispatcher, addr string, opts ...WebSocketOption) error {
	t := transport.NewWebSocket(addr, opts...)
	return t.Serve(ctx, d)
}

// WithReadTimeout sets the read timeout for HTTP requests.
func WithReadTimeout(d time.Duration) HTTPOption {
	return transport.WithReadTimeout(d)
}

// WithWriteTimeout sets the write timeout for HTTP responses.
func WithWriteTimeout(d time.Duration) HTTPOption {
	return transport.WithWriteTimeout(d)
}

// Middleware re-exports

// Chain composes multiple middleware into a single middleware.
func Chain(middlewares ...Middleware) Middleware {
	return dispatch.Chain(middlewares...)
}

// Recover returns middleware that catches panics and converts them to
// internal errors with a generic message. The panic value is only visible
// through middleware.WithRecoverLogger.
func Recover(opts ...middleware.RecoverOption) Middleware {
	return middleware.Recover(opts...)
}

// Timeout returns middleware that enforces a per-request deadline.
func Timeout(d time.Duration) Middleware {
	return middleware.Timeout(d)
}

// RequestID returns middleware that injects a unique dispatch ID into the context.
func RequestID() Middleware {
	return middleware.RequestID()
}

// RequestIDFromContext returns the dispatch ID from the context, or empty string if not set.
func RequestIDFromContext(ctx context.Context) string {
	return middleware.RequestIDFromContext(ctx)
}

// Logging returns middleware that logs request details.
func Logging(logger Logger) Middleware {
	return middleware.Logging(logger)
}

// RateLimit returns middleware that limits request rate with a token bucket.
func RateLimit(rate int, burst int, opts ...middleware.RateLimitOption) Middleware {
	return middleware.RateLimit(rate, burst, opts...)
}

// DefaultMiddleware returns the recommended production middleware stack.
func DefaultMiddleware(logger Logger) []Middleware {
	return middleware.DefaultStack(logger)
}

// DefaultMiddlewareWithTimeout returns the default stack with a timeout middleware.
func DefaultMiddlewareWithTimeout(logger Logger, timeout time.Duration) []Middleware {
	return middleware.DefaultStackWithTimeout(logger, timeout)
}

// LogF creates a new log field with the given key and value.
func LogF(key string, value any) LogField {
	return middleware.F(key, value)
}
