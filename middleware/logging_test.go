package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// captureLogger records log entries for assertions.
type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

func (l *captureLogger) log(level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: m})
}

func (l *captureLogger) Info(msg string, fields ...Field)  { l.log("info", msg, fields) }
func (l *captureLogger) Error(msg string, fields ...Field) { l.log("error", msg, fields) }
func (l *captureLogger) Debug(msg string, fields ...Field) { l.log("debug", msg, fields) }
func (l *captureLogger) Warn(msg string, fields ...Field)  { l.log("warn", msg, fields) }

func (l *captureLogger) last(t *testing.T) logEntry {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		t.Fatal("expected at least one log entry")
	}
	return l.entries[len(l.entries)-1]
}

func TestLogging(t *testing.T) {
	t.Run("logs success at info level", func(t *testing.T) {
		logger := &captureLogger{}
		invoke := Logging(logger)(func(_ context.Context, _ *protocol.Request) (any, error) {
			return "ok", nil
		})

		_, err := invoke(context.Background(), &protocol.Request{Method: "sum", ID: float64(1), HasID: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entry := logger.last(t)
		if entry.level != "info" {
			t.Errorf("expected info level, got %s", entry.level)
		}
		if entry.msg != "request completed" {
			t.Errorf("unexpected message: %q", entry.msg)
		}
		if entry.fields["method"] != "sum" {
			t.Errorf("expected method field 'sum', got %v", entry.fields["method"])
		}
		if entry.fields["id"] != float64(1) {
			t.Errorf("expected id field 1, got %v", entry.fields["id"])
		}
		if _, ok := entry.fields["duration"]; !ok {
			t.Error("expected duration field")
		}
	})

	t.Run("logs failure at error level", func(t *testing.T) {
		logger := &captureLogger{}
		invoke := Logging(logger)(func(_ context.Context, _ *protocol.Request) (any, error) {
			return nil, errors.New("db unavailable")
		})

		_, err := invoke(context.Background(), &protocol.Request{Method: "query", HasID: true})
		if err == nil {
			t.Fatal("expected error to pass through")
		}

		entry := logger.last(t)
		if entry.level != "error" {
			t.Errorf("expected error level, got %s", entry.level)
		}
		if entry.fields["error"] != "db unavailable" {
			t.Errorf("expected error field, got %v", entry.fields["error"])
		}
	})

	t.Run("omits id for notifications", func(t *testing.T) {
		logger := &captureLogger{}
		invoke := Logging(logger)(func(_ context.Context, _ *protocol.Request) (any, error) {
			return nil, nil
		})

		_, _ = invoke(context.Background(), &protocol.Request{Method: "notify"})

		entry := logger.last(t)
		if _, ok := entry.fields["id"]; ok {
			t.Error("expected no id field for notification")
		}
	})

	t.Run("includes request id when present", func(t *testing.T) {
		logger := &captureLogger{}
		invoke := Logging(logger)(func(_ context.Context, _ *protocol.Request) (any, error) {
			return nil, nil
		})

		ctx := ContextWithRequestID(context.Background(), "req-abc")
		_, _ = invoke(ctx, &protocol.Request{Method: "sum"})

		entry := logger.last(t)
		if entry.fields["request_id"] != "req-abc" {
			t.Errorf("expected request_id field, got %v", entry.fields["request_id"])
		}
	})
}

func TestF(t *testing.T) {
	f := F("key", 42)
	if f.Key != "key" || f.Value != 42 {
		t.Errorf("unexpected field: %+v", f)
	}
}

func TestNopLogger(t *testing.T) {
	// Just verify it satisfies the interface and does not panic.
	var logger Logger = NopLogger{}
	logger.Info("a")
	logger.Error("b", F("k", "v"))
	logger.Debug("c")
	logger.Warn("d")
}
