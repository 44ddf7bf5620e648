package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/jsonrpc-go/dispatch"
	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// Logger is the interface for structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logging returns middleware that logs request details. Successful requests
// are logged at info level, errors at error level. Because the middleware
// runs before error normalization, it sees the original handler fault, not
// the internal error that replaces it on the wire.
func Logging(logger Logger) dispatch.Middleware {
	return func(next dispatch.Invoker) dispatch.Invoker {
		return func(ctx context.Context, req *protocol.Request) (any, error) {
			start := time.Now()

			result, err := next(ctx, req)

			duration := time.Since(start)

			fields := []Field{
				F("method", req.Method),
				F("duration", duration),
			}
			if req.HasID {
				fields = append(fields, F("id", req.ID))
			}
			if requestID := RequestIDFromContext(ctx); requestID != "" {
				fields = append(fields, F("request_id", requestID))
			}

			if err != nil {
				fields = append(fields, F("error", err.Error()))
				logger.Error("request failed", fields...)
			} else {
				logger.Info("request completed", fields...)
			}

			return result, err
		}
	}
}

// NopLogger is a logger that discards all log entries.
type NopLogger struct{}

func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
