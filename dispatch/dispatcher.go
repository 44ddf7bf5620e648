package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// Dispatcher routes raw or parsed JSON-RPC 2.0 requests to registered
// handlers. Handle never panics and never returns an error to its caller:
// every outcome, including faults raised while producing an error response,
// is a well-formed response value.
type Dispatcher struct {
	registry   *Registry
	middleware []Middleware
	invoke     Invoker
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRegistry uses an existing registry instead of a fresh one.
func WithRegistry(r *Registry) Option {
	return func(d *Dispatcher) {
		d.registry = r
	}
}

// WithMiddleware wraps the invocation step of every dispatched request.
// Middleware runs after envelope validation; errors it returns are
// normalized exactly like handler errors.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(d *Dispatcher) {
		d.middleware = append(d.middleware, middlewares...)
	}
}

// New creates a Dispatcher with the given options.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	if d.registry == nil {
		d.registry = NewRegistry()
	}
	d.invoke = Chain(d.middleware...)(d.resolve)
	return d
}

// Register merges the given methods into the dispatcher's registry.
func (d *Dispatcher) Register(methods map[string]HandlerFunc) {
	d.registry.Register(methods)
}

// SetFallback sets the registry's fallback resolver.
func (d *Dispatcher) SetFallback(fallback FallbackFunc) {
	d.registry.SetFallback(fallback)
}

// Registry returns the dispatcher's method registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Handle dispatches request text, a single parsed request, or a batch.
// Input may be a string, []byte, or json.RawMessage to be parsed, or an
// already-decoded JSON value. The result is a *protocol.Response, a
// []*protocol.Response for a batch, or nil when there is nothing to send
// (a successful notification, or a batch of them).
func (d *Dispatcher) Handle(ctx context.Context, input any) (out any) {
	// Last-resort net, independent of the per-request one.
	defer func() {
		if r := recover(); r != nil {
			out = protocol.NewErrorResponse(nil,
				protocol.NewInternalError("An error occurred when processing request"))
		}
	}()

	parsed := input
	switch v := input.(type) {
	case string:
		p, err := parsePayload([]byte(v))
		if err != nil {
			return protocol.ParseErrorResponse("", err.Error())
		}
		parsed = p
	case []byte:
		p, err := parsePayload(v)
		if err != nil {
			return protocol.ParseErrorResponse("", err.Error())
		}
		parsed = p
	case json.RawMessage:
		p, err := parsePayload(v)
		if err != nil {
			return protocol.ParseErrorResponse("", err.Error())
		}
		parsed = p
	}

	if batch, ok := asBatch(parsed); ok {
		if len(batch) == 0 {
			return protocol.NewErrorResponse(nil,
				protocol.NewInvalidRequest("Invalid request, missing request object(s)"))
		}
		if responses := d.handleBatch(ctx, batch); responses != nil {
			return responses
		}
		return nil
	}

	if resp := d.handleSingle(ctx, parsed); resp != nil {
		return resp
	}
	return nil
}

// HandleJSON parses data, dispatches it, and marshals the outcome. A nil
// return means there is nothing to send. This is the entry point transports
// consume.
func (d *Dispatcher) HandleJSON(ctx context.Context, data []byte) []byte {
	out := d.Handle(ctx, data)
	if out == nil {
		return nil
	}
	encoded, err := json.Marshal(out)
	if err != nil {
		// A handler produced an unencodable result value.
		encoded, _ = json.Marshal(protocol.NewErrorResponse(nil,
			protocol.NewInternalError("An error occurred when processing request")))
	}
	return encoded
}

// handleSingle runs one request through validation, resolution, and
// invocation. It never fails: every fault becomes an error response, and
// only a successful notification collapses to nil.
func (d *Dispatcher) handleSingle(ctx context.Context, raw any) (resp *protocol.Response) {
	var id any
	defer func() {
		if r := recover(); r != nil {
			resp = protocol.NewErrorResponse(id,
				protocol.NewInternalError("A critical error occurred when handling request"))
		}
	}()

	req, errResp := ValidateRequest(raw)
	if errResp != nil {
		return errResp
	}
	id = req.ID

	result, err := d.safeInvoke(ctx, req)
	if err != nil {
		var rpcErr *protocol.Error
		if errors.As(err, &rpcErr) {
			return protocol.NewErrorResponse(id, rpcErr)
		}
		return protocol.NewErrorResponse(id,
			protocol.NewInternalError("An error occurred when handling request"))
	}

	if req.IsNotification() {
		return nil
	}
	return protocol.NewResponse(id, result)
}

// handleBatch fans the entries out concurrently and waits for all of them.
// Responses keep their input slots until notification results are filtered;
// callers correlate by id, not position.
func (d *Dispatcher) handleBatch(ctx context.Context, batch []any) []*protocol.Response {
	results := make([]*protocol.Response, len(batch))

	var wg sync.WaitGroup
	for i, raw := range batch {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.handleSingle(ctx, raw)
		}()
	}
	wg.Wait()

	responses := make([]*protocol.Response, 0, len(results))
	for _, r := range results {
		if r != nil {
			responses = append(responses, r)
		}
	}
	if len(responses) == 0 {
		return nil
	}
	return responses
}

// safeInvoke converts handler panics into errors so a misbehaving handler
// cannot take down a whole batch.
func (d *Dispatcher) safeInvoke(ctx context.Context, req *protocol.Request) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return d.invoke(ctx, req)
}

// resolve is the innermost invoker: registry lookup, fallback resolution,
// handler invocation.
func (d *Dispatcher) resolve(ctx context.Context, req *protocol.Request) (any, error) {
	if handler, ok := d.registry.Lookup(req.Method); ok {
		return handler(ctx, req.Params)
	}

	if fallback := d.registry.Fallback(); fallback != nil {
		result, found, err := fallback(ctx, req.Method, req.Params)
		if err != nil {
			return nil, err
		}
		if found {
			return result, nil
		}
	}

	return nil, protocol.NewMethodNotFound(fmt.Sprintf("Method '%s' not found", req.Method))
}

// parsePayload decodes a JSON payload. Numbers decode as json.Number so
// numeric ids round-trip exactly.
func parsePayload(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected trailing data")
	}
	return v, nil
}

// asBatch recognizes the batch shapes a caller may hand in.
func asBatch(v any) ([]any, bool) {
	switch b := v.(type) {
	case []any:
		return b, true
	case []map[string]any:
		batch := make([]any, len(b))
		for i, entry := range b {
			batch[i] = entry
		}
		return batch, true
	}
	return nil, false
}
