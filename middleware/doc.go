// Package middleware provides request middleware for the JSON-RPC dispatcher.
//
// Middleware wraps the invocation step of a dispatched request: it runs
// after envelope validation and before error normalization, so it observes
// the original handler outcome rather than the serialized response.
//
// # Basic Usage
//
// Create and compose middleware via the dispatcher options:
//
//	d := dispatch.New(dispatch.WithMiddleware(
//	    middleware.Recover(),
//	    middleware.RequestID(),
//	    middleware.Logging(logger),
//	))
//
// # Available Middleware
//
// The package provides several built-in middleware:
//
//   - Recover: Catches panics and converts them to internal errors
//   - RequestID: Injects unique dispatch IDs into the context
//   - Timeout: Enforces per-request deadlines
//   - Logging: Logs request details and timing
//   - RateLimit: Token-bucket rate limiting (global, per-method, per-client)
//   - OTel: OpenTelemetry tracing and metrics
//
// # Default Stacks
//
// Pre-configured middleware stacks are available for common use cases:
//
//	// Recover + RequestID + Logging
//	stack := middleware.DefaultStack(logger)
//
//	// Recover + RequestID + Timeout + Logging
//	stack := middleware.DefaultStackWithTimeout(logger, 30*time.Second)
//
// # Custom Middleware
//
// Implement custom middleware using the dispatch.Middleware type:
//
//	func MethodAllowlist(allowed map[string]bool) dispatch.Middleware {
//	    return func(next dispatch.Invoker) dispatch.Invoker {
//	        return func(ctx context.Context, req *protocol.Request) (any, error) {
//	            if !allowed[req.Method] {
//	                return nil, protocol.NewMethodNotFound("Method '" + req.Method + "' not found")
//	            }
//	            return next(ctx, req)
//	        }
//	    }
//	}
package middleware
