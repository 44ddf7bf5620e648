package dispatch

import (
	"encoding/json"
	"reflect"

	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// ValidateRequest checks the envelope of a single parsed request value.
// It returns either the validated request or a complete error response with
// the id resolved as far as extraction succeeded (null otherwise). Checks
// short-circuit on the first failure.
func ValidateRequest(raw any) (*protocol.Request, *protocol.Response) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, invalidRequest("Invalid request", nil)
	}

	// Any non-empty version marker passes; the value itself is not compared.
	if !protocol.Truthy(obj["jsonrpc"]) {
		return nil, invalidRequest("Invalid request, missing jsonrpc version", nil)
	}

	var id any
	idVal, hasID := obj["id"]
	if hasID {
		if !validID(idVal) {
			// Extraction failed, so this error reports a null id even
			// though the field was present.
			return nil, invalidRequest("Invalid request, invalid id", nil)
		}
		id = idVal
	}

	method, ok := obj["method"].(string)
	if !ok || method == "" {
		return nil, invalidRequest("Invalid request, missing method", id)
	}

	params := obj["params"]
	if protocol.Truthy(params) && !validParams(params) {
		return nil, invalidRequest("Invalid request, invalid parameter type", id)
	}

	return &protocol.Request{
		Method: method,
		Params: params,
		ID:     id,
		HasID:  hasID,
	}, nil
}

func invalidRequest(msg string, id any) *protocol.Response {
	return protocol.NewErrorResponse(id, protocol.NewInvalidRequest(msg))
}

// validID accepts numbers, strings, and explicit null.
func validID(v any) bool {
	switch v.(type) {
	case nil, string, json.Number:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// validParams accepts ordered sequences and keyed maps, the two structured
// params shapes. Function values are also let through: embedders that hand
// the dispatcher pre-built values sometimes pass argument thunks, and those
// can never occur in JSON input anyway.
func validParams(v any) bool {
	switch v.(type) {
	case []any, map[string]any:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Func:
		return true
	}
	return false
}
