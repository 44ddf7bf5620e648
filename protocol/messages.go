package protocol

import "encoding/json"

// Version is the JSON-RPC protocol version marker.
const Version = "2.0"

// Request is a single JSON-RPC 2.0 request after envelope validation.
//
// ID holds the request id (a number, a string, or nil). HasID distinguishes
// a request whose id field is an explicit null from a notification, which
// has no id field at all: only the latter suppresses the response.
type Request struct {
	Method string
	Params any
	ID     any
	HasID  bool
}

// IsNotification returns true if this request has no id field.
func (r *Request) IsNotification() bool {
	return !r.HasID
}

// MarshalJSON encodes the request envelope, emitting the id field only when
// the request carries one.
func (r *Request) MarshalJSON() ([]byte, error) {
	obj := map[string]any{
		"jsonrpc": Version,
		"method":  r.Method,
	}
	if r.Params != nil {
		obj["params"] = r.Params
	}
	if r.HasID {
		obj["id"] = r.ID
	}
	return json.Marshal(obj)
}

// Response represents a JSON-RPC 2.0 response. Exactly one of Result or
// Error is set; a nil Result on a success response encodes as an explicit
// null.
type Response struct {
	JSONRPC string
	Result  any
	Error   *Error
	ID      any
}

// NewResponse creates a successful response.
func NewResponse(id any, result any) *Response {
	return &Response{
		JSONRPC: Version,
		Result:  result,
		ID:      id,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(id any, err *Error) *Response {
	return &Response{
		JSONRPC: Version,
		Error:   err,
		ID:      id,
	}
}

// IsError returns true if this is an error response.
func (r *Response) IsError() bool {
	return r.Error != nil
}

// responseWire is the encoding shape of a response. Result is a pointer so
// that a null result is still serialized while an error response omits the
// field entirely; id is always serialized, null when unknown.
type responseWire struct {
	JSONRPC string `json:"jsonrpc"`
	Result  *any   `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
	ID      any    `json:"id"`
}

// MarshalJSON encodes the response envelope.
func (r *Response) MarshalJSON() ([]byte, error) {
	w := responseWire{JSONRPC: Version, ID: r.ID}
	if r.Error != nil {
		w.Error = r.Error
	} else {
		result := r.Result
		w.Result = &result
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a response envelope.
func (r *Response) UnmarshalJSON(data []byte) error {
	var w struct {
		JSONRPC string `json:"jsonrpc"`
		Result  any    `json:"result"`
		Error   *Error `json:"error"`
		ID      any    `json:"id"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.JSONRPC = w.JSONRPC
	r.Result = w.Result
	r.Error = w.Error
	r.ID = w.ID
	return nil
}

// ParseErrorResponse builds the response returned when request text could
// not be parsed as JSON. An empty message selects the default; data is
// attached only when non-empty. Exposed for hosts that parse JSON themselves.
func ParseErrorResponse(message string, data any) *Response {
	if message == "" {
		message = "Unable to parse JSON"
	}
	return NewErrorResponse(nil, NewParseError(message).WithData(data))
}

// Notification represents a server-to-client JSON-RPC notification.
type Notification struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// NewNotification creates a notification with the given method and params.
func NewNotification(method string, params any) *Notification {
	return &Notification{
		JSONRPC: Version,
		Method:  method,
		Params:  params,
	}
}
