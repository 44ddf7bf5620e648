// Package protocol defines the JSON-RPC 2.0 message types and error codes.
//
// This package provides the low-level protocol structures used by
// jsonrpc-go. Most users should use the higher-level jsonrpc package
// instead.
//
// # Request and Response Types
//
// Request is the validated form of a single request. Its HasID field keeps
// the distinction between a request whose id is an explicit null and a
// notification, which carries no id field at all:
//
//	type Request struct {
//	    Method string
//	    Params any
//	    ID     any
//	    HasID  bool
//	}
//
// Response serializes with an explicit id (null when the originating id
// could not be determined) and exactly one of result or error; a nil result
// on a success response encodes as null rather than being omitted.
//
// # Error Codes
//
// Standard JSON-RPC 2.0 error codes are defined as constants:
//
//	CodeParseError     = -32700  // Invalid JSON
//	CodeInvalidRequest = -32600  // Invalid Request object
//	CodeMethodNotFound = -32601  // Method not found
//	CodeInvalidParams  = -32602  // Invalid method parameters
//	CodeInternalError  = -32603  // Internal server error
//
// Helper functions create properly formatted errors:
//
//	err := protocol.NewMethodNotFound("Method 'sum' not found")
//	err := protocol.NewInvalidParams("missing required field: name")
//
// Error implements the error interface. A handler that returns an *Error
// controls the code, message, and data of the resulting error response;
// any other error is reported as an internal error.
package protocol
