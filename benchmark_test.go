// Package jsonrpc provides benchmarks for key operations.
package jsonrpc_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/felixgeelhaar/jsonrpc-go"
	"github.com/felixgeelhaar/jsonrpc-go/middleware"
)

func benchDispatcher(opts ...jsonrpc.Option) *jsonrpc.Dispatcher {
	d := jsonrpc.New(opts...)
	d.Register(map[string]jsonrpc.HandlerFunc{
		"sum": sumHandler,
		"echo": func(_ context.Context, params any) (any, error) {
			return params, nil
		},
	})
	return d
}

// BenchmarkHandleJSON measures single-request dispatch from raw text.
func BenchmarkHandleJSON(b *testing.B) {
	d := benchDispatcher()
	payload := []byte(`{"jsonrpc":"2.0","method":"sum","params":[1,2,3],"id":1}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := d.HandleJSON(context.Background(), payload); out == nil {
			b.Fatal("expected output")
		}
	}
}

// BenchmarkHandleParsed measures dispatch of an already-decoded request.
func BenchmarkHandleParsed(b *testing.B) {
	d := benchDispatcher()
	req := map[string]any{
		"jsonrpc": "2.0",
		"method":  "echo",
		"params":  map[string]any{"k": "v"},
		"id":      float64(1),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := d.Handle(context.Background(), req); out == nil {
			b.Fatal("expected output")
		}
	}
}

// BenchmarkBatch measures concurrent batch dispatch.
func BenchmarkBatch(b *testing.B) {
	d := benchDispatcher()

	entries := make([]string, 10)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"jsonrpc":"2.0","method":"sum","params":[1,2],"id":%d}`, i)
	}
	payload := []byte("[" + strings.Join(entries, ",") + "]")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := d.HandleJSON(context.Background(), payload); out == nil {
			b.Fatal("expected output")
		}
	}
}

// BenchmarkNotification measures dispatch with no response due.
func BenchmarkNotification(b *testing.B) {
	d := benchDispatcher()
	payload := []byte(`{"jsonrpc":"2.0","method":"echo","params":[1]}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := d.HandleJSON(context.Background(), payload); out != nil {
			b.Fatal("expected no output for notification")
		}
	}
}

// BenchmarkMiddlewareChain measures middleware chain overhead.
func BenchmarkMiddlewareChain(b *testing.B) {
	d := benchDispatcher(jsonrpc.WithMiddleware(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(middleware.NopLogger{}),
	))
	payload := []byte(`{"jsonrpc":"2.0","method":"sum","params":[1,2,3],"id":1}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := d.HandleJSON(context.Background(), payload); out == nil {
			b.Fatal("expected output")
		}
	}
}

// BenchmarkMethodNotFound measures the unresolved-method path.
func BenchmarkMethodNotFound(b *testing.B) {
	d := benchDispatcher()
	payload := []byte(`{"jsonrpc":"2.0","method":"missing","id":1}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := d.HandleJSON(context.Background(), payload); out == nil {
			b.Fatal("expected output")
		}
	}
}
