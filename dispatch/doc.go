// Package dispatch implements the JSON-RPC 2.0 request handling pipeline:
// envelope validation, method resolution, invocation, error normalization,
// and batch fan-out.
//
// The Dispatcher is transport-agnostic. Embed it behind any transport and
// feed it request payloads:
//
//	d := dispatch.New()
//	d.Register(map[string]dispatch.HandlerFunc{
//	    "sum": func(ctx context.Context, params any) (any, error) {
//	        args := params.(map[string]any)
//	        a, _ := args["a"].(json.Number).Float64()
//	        b, _ := args["b"].(json.Number).Float64()
//	        return a + b, nil
//	    },
//	})
//
//	out := d.HandleJSON(ctx, []byte(`{"jsonrpc":"2.0","method":"sum","params":{"a":2,"b":4},"id":1}`))
//
// Handle accepts raw text or already-decoded values, single requests or
// batches, and always produces a well-formed outcome: a response, a slice
// of responses, or nil when only notifications were processed. Faults never
// escape; anything unanticipated surfaces as an internal error response.
//
// Batch entries are dispatched concurrently. Completion order and
// side-effect visibility between entries are unspecified; responses are
// correlated by id. The dispatcher imposes no timeout and offers no
// cancellation beyond what the caller encodes in the context.
package dispatch
