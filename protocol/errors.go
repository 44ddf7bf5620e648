// Package protocol implements the JSON-RPC 2.0 message types and error codes.
package protocol

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Implementation-defined server error codes (-32000..-32099 are reserved
// for servers by the JSON-RPC 2.0 specification).
const (
	CodeRateLimited = -32003
)

// DefaultErrorMessage is used when an error is constructed without a message.
const DefaultErrorMessage = "Unspecified error"

// Error represents a JSON-RPC 2.0 error object.
//
// Error implements the error interface, so handlers signal an intentional
// protocol-level failure by returning (or wrapping) an *Error. The dispatcher
// detects it with errors.As and serializes its code, message, and data
// verbatim; any other error value is normalized to an internal error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewError creates an error object with the given code and message.
// An empty message is replaced with DefaultErrorMessage.
func NewError(code int, message string) *Error {
	if message == "" {
		message = DefaultErrorMessage
	}
	return &Error{Code: code, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc: %s (code: %d)", e.Message, e.Code)
}

// Is implements errors.Is comparison by error code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithData returns a copy of the error with data attached. Empty data
// (nil, false, zero, or "") is not attached, so an error response never
// carries an empty data field.
func (e *Error) WithData(data any) *Error {
	if !Truthy(data) {
		data = nil
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Data:    data,
	}
}

// NewParseError creates a parse error (-32700).
func NewParseError(msg string) *Error {
	return NewError(CodeParseError, msg)
}

// NewInvalidRequest creates an invalid request error (-32600).
func NewInvalidRequest(msg string) *Error {
	return NewError(CodeInvalidRequest, msg)
}

// NewMethodNotFound creates a method not found error (-32601).
func NewMethodNotFound(msg string) *Error {
	return NewError(CodeMethodNotFound, msg)
}

// NewInvalidParams creates an invalid params error (-32602).
func NewInvalidParams(msg string) *Error {
	return NewError(CodeInvalidParams, msg)
}

// NewInternalError creates an internal error (-32603).
func NewInternalError(msg string) *Error {
	return NewError(CodeInternalError, msg)
}

// NewRateLimited creates a rate limited error (-32003).
func NewRateLimited(msg string) *Error {
	return NewError(CodeRateLimited, msg)
}

// Truthy reports whether a decoded JSON value counts as present: nil, false,
// zero numbers, and empty strings do not; everything else, including empty
// slices and maps, does. Lenient envelope checks and error data attachment
// share this rule.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}
