package protocol

import (
	"encoding/json"
	"testing"
)

func assertJSONEqual(t *testing.T, got []byte, want string) {
	t.Helper()

	var gotJSON, wantJSON any
	if err := json.Unmarshal(got, &gotJSON); err != nil {
		t.Fatalf("failed to parse got JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &wantJSON); err != nil {
		t.Fatalf("failed to parse want JSON: %v", err)
	}

	gotNorm, _ := json.Marshal(gotJSON)
	wantNorm, _ := json.Marshal(wantJSON)

	if string(gotNorm) != string(wantNorm) {
		t.Errorf("MarshalJSON() = %s, want %s", gotNorm, wantNorm)
	}
}

func TestRequest_IsNotification(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want bool
	}{
		{
			name: "request with id is not notification",
			req:  Request{Method: "sum", ID: json.Number("1"), HasID: true},
			want: false,
		},
		{
			name: "request with explicit null id is not notification",
			req:  Request{Method: "sum", ID: nil, HasID: true},
			want: false,
		},
		{
			name: "request without id is notification",
			req:  Request{Method: "sum"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.IsNotification(); got != tt.want {
				t.Errorf("IsNotification() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequest_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want string
	}{
		{
			name: "call with params",
			req:  &Request{Method: "sum", Params: map[string]any{"a": 1}, ID: "c1", HasID: true},
			want: `{"jsonrpc":"2.0","method":"sum","params":{"a":1},"id":"c1"}`,
		},
		{
			name: "call with null id keeps the id field",
			req:  &Request{Method: "sum", ID: nil, HasID: true},
			want: `{"jsonrpc":"2.0","method":"sum","id":null}`,
		},
		{
			name: "notification omits the id field",
			req:  &Request{Method: "notify"},
			want: `{"jsonrpc":"2.0","method":"notify"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertJSONEqual(t, got, tt.want)
		})
	}
}

func TestResponse_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		want string
	}{
		{
			name: "success response",
			resp: NewResponse(1, map[string]string{"status": "ok"}),
			want: `{"jsonrpc":"2.0","result":{"status":"ok"},"id":1}`,
		},
		{
			name: "null result is serialized",
			resp: NewResponse("abc", nil),
			want: `{"jsonrpc":"2.0","result":null,"id":"abc"}`,
		},
		{
			name: "null id is serialized",
			resp: NewResponse(nil, "ok"),
			want: `{"jsonrpc":"2.0","result":"ok","id":null}`,
		},
		{
			name: "error response omits result",
			resp: NewErrorResponse(1, &Error{Code: CodeInternalError, Message: "failed"}),
			want: `{"jsonrpc":"2.0","error":{"code":-32603,"message":"failed"},"id":1}`,
		},
		{
			name: "error data is included",
			resp: NewErrorResponse(nil, NewInvalidParams("bad a").WithData("a must be a number")),
			want: `{"jsonrpc":"2.0","error":{"code":-32602,"message":"bad a","data":"a must be a number"},"id":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.resp)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertJSONEqual(t, got, tt.want)
		})
	}
}

func TestResponse_UnmarshalJSON(t *testing.T) {
	t.Run("success response", func(t *testing.T) {
		var resp Response
		if err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","result":6,"id":1}`), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Error != nil {
			t.Errorf("Error = %v, want nil", resp.Error)
		}
		if resp.Result != 6.0 {
			t.Errorf("Result = %v, want 6", resp.Result)
		}
	})

	t.Run("error response", func(t *testing.T) {
		var resp Response
		if err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","error":{"code":-32601,"message":"nope"},"id":null}`), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Error == nil {
			t.Fatal("Error should not be nil")
		}
		if resp.Error.Code != CodeMethodNotFound {
			t.Errorf("Error.Code = %d, want %d", resp.Error.Code, CodeMethodNotFound)
		}
		if resp.ID != nil {
			t.Errorf("ID = %v, want nil", resp.ID)
		}
	})
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse(42, map[string]int{"count": 10})

	if resp.JSONRPC != Version {
		t.Errorf("JSONRPC = %q, want %q", resp.JSONRPC, Version)
	}
	if resp.ID != 42 {
		t.Errorf("ID = %v, want 42", resp.ID)
	}
	if resp.Error != nil {
		t.Error("Error should be nil for success response")
	}
	if resp.IsError() {
		t.Error("IsError() should be false for success response")
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(42, NewInternalError("something failed"))

	if resp.Result != nil {
		t.Error("Result should be nil for error response")
	}
	if resp.Error == nil {
		t.Fatal("Error should not be nil")
	}
	if resp.Error.Code != CodeInternalError {
		t.Errorf("Error.Code = %d, want %d", resp.Error.Code, CodeInternalError)
	}
	if !resp.IsError() {
		t.Error("IsError() should be true for error response")
	}
}

func TestParseErrorResponse(t *testing.T) {
	t.Run("default message", func(t *testing.T) {
		resp := ParseErrorResponse("", nil)

		if resp.Error == nil {
			t.Fatal("Error should not be nil")
		}
		if resp.Error.Code != CodeParseError {
			t.Errorf("Error.Code = %d, want %d", resp.Error.Code, CodeParseError)
		}
		if resp.Error.Message != "Unable to parse JSON" {
			t.Errorf("Error.Message = %q, want %q", resp.Error.Message, "Unable to parse JSON")
		}
		if resp.ID != nil {
			t.Errorf("ID = %v, want nil", resp.ID)
		}
	})

	t.Run("custom message and data", func(t *testing.T) {
		resp := ParseErrorResponse("bad payload", "unexpected end of input")

		if resp.Error.Message != "bad payload" {
			t.Errorf("Error.Message = %q, want %q", resp.Error.Message, "bad payload")
		}
		if resp.Error.Data != "unexpected end of input" {
			t.Errorf("Error.Data = %v, want detail string", resp.Error.Data)
		}
	})
}

func TestNewNotification(t *testing.T) {
	n := NewNotification("progress", map[string]any{"done": 3})

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, data, `{"jsonrpc":"2.0","method":"progress","params":{"done":3}}`)
}
