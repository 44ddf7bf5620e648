// Package testutil provides testing utilities for JSON-RPC dispatchers.
//
// This package helps developers write tests for their dispatchers by
// providing an in-memory test client that speaks the wire format without a
// transport.
//
// Example usage:
//
//	func TestMyDispatcher(t *testing.T) {
//	    d := jsonrpc.New()
//	    d.Register(map[string]jsonrpc.HandlerFunc{
//	        "greet": func(ctx context.Context, params any) (any, error) {
//	            return "Hello", nil
//	        },
//	    })
//
//	    tc := testutil.NewTestClient(t, d)
//	    result, err := tc.Call("greet", nil)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	}
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/felixgeelhaar/jsonrpc-go/protocol"
	"github.com/felixgeelhaar/jsonrpc-go/transport"
)

// TestClient drives a dispatcher through its wire interface in-memory.
type TestClient struct {
	t       testing.TB
	handler transport.Handler
	reqID   int64
	mu      sync.Mutex
}

// NewTestClient creates a new test client for the given handler. The
// dispatcher satisfies the handler interface directly.
func NewTestClient(t testing.TB, handler transport.Handler) *TestClient {
	t.Helper()
	return &TestClient{
		t:       t,
		handler: handler,
	}
}

// nextID returns the next request ID.
func (tc *TestClient) nextID() int64 {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.reqID++
	return tc.reqID
}

// Call sends a request with a fresh id and returns the decoded response.
// A protocol-level error in the response is returned as the error value.
func (tc *TestClient) Call(method string, params any) (any, error) {
	tc.t.Helper()

	resp, err := tc.CallResponse(method, params)
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// CallResponse sends a request and returns the full response envelope.
func (tc *TestClient) CallResponse(method string, params any) (*protocol.Response, error) {
	tc.t.Helper()

	req := map[string]any{
		"jsonrpc": protocol.Version,
		"method":  method,
		"id":      tc.nextID(),
	}
	if params != nil {
		req["params"] = params
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	out := tc.handler.HandleJSON(context.Background(), data)
	if out == nil {
		return nil, fmt.Errorf("no response for call %q", method)
	}

	var resp protocol.Response
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// Notify sends a notification. It fails the test if the dispatcher
// produces a response.
func (tc *TestClient) Notify(method string, params any) {
	tc.t.Helper()

	req := map[string]any{
		"jsonrpc": protocol.Version,
		"method":  method,
	}
	if params != nil {
		req["params"] = params
	}

	data, err := json.Marshal(req)
	if err != nil {
		tc.t.Fatalf("failed to marshal notification: %v", err)
	}

	if out := tc.handler.HandleJSON(context.Background(), data); out != nil {
		tc.t.Fatalf("notification %q produced a response: %s", method, out)
	}
}

// BatchEntry describes one request in a batch.
type BatchEntry struct {
	Method string
	Params any
	// Notify marks the entry as a notification (no id, no response).
	Notify bool
}

// Batch sends a batch payload and returns the decoded responses.
// Entries marked Notify receive no response; an all-notification batch
// returns nil.
func (tc *TestClient) Batch(entries ...BatchEntry) []*protocol.Response {
	tc.t.Helper()

	batch := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		req := map[string]any{
			"jsonrpc": protocol.Version,
			"method":  e.Method,
		}
		if e.Params != nil {
			req["params"] = e.Params
		}
		if !e.Notify {
			req["id"] = tc.nextID()
		}
		batch = append(batch, req)
	}

	data, err := json.Marshal(batch)
	if err != nil {
		tc.t.Fatalf("failed to marshal batch: %v", err)
	}

	out := tc.handler.HandleJSON(context.Background(), data)
	if out == nil {
		return nil
	}

	var resps []*protocol.Response
	if err := json.Unmarshal(out, &resps); err != nil {
		tc.t.Fatalf("failed to decode batch response: %v (got %s)", err, out)
	}
	return resps
}

// CallRaw sends raw payload text and returns the raw output, nil when no
// response is due. Useful for asserting exact wire behavior.
func (tc *TestClient) CallRaw(payload string) []byte {
	tc.t.Helper()
	return tc.handler.HandleJSON(context.Background(), []byte(payload))
}

// MustCall is like Call but fails the test on any error.
func (tc *TestClient) MustCall(method string, params any) any {
	tc.t.Helper()

	result, err := tc.Call(method, params)
	if err != nil {
		tc.t.Fatalf("call %q failed: %v", method, err)
	}
	return result
}
