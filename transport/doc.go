// Package transport provides JSON-RPC transport implementations.
//
// This package implements the communication layer for JSON-RPC servers.
// Transports move raw payloads; the dispatcher behind the Handler
// interface owns parsing, batching, and error normalization.
//
// # Stdio Transport
//
// The stdio transport communicates via stdin/stdout, one payload per
// line, suitable for local tools and CLI integrations:
//
//	t := transport.NewStdio()
//	err := t.Serve(ctx, handler)
//
// # HTTP Transport
//
// The HTTP transport serves JSON-RPC over HTTP POST with optional CORS
// and graceful shutdown with connection draining:
//
//	t := transport.NewHTTP(":8080",
//	    transport.WithReadTimeout(30*time.Second),
//	    transport.WithCORSOrigins("https://app.example.com"),
//	)
//	err := t.Serve(ctx, handler)
//
// The HTTP transport exposes the following endpoints:
//   - POST /rpc - Handle JSON-RPC payloads (single or batch)
//   - GET /health - Health check endpoint
//
// # WebSocket Transport
//
// The WebSocket transport handles one payload per text message and
// supports server-pushed notifications:
//
//	t := transport.NewWebSocket(":8080")
//	err := t.Serve(ctx, handler)
//
// # Handler Interface
//
// All transports expect a Handler that processes raw payloads:
//
//	type Handler interface {
//	    HandleJSON(ctx context.Context, data []byte) []byte
//	}
//
// A nil return means no response is due (the payload contained only
// notifications). The dispatch.Dispatcher satisfies this interface.
//
// # Usage with jsonrpc Package
//
// Most users should use the jsonrpc package's convenience functions:
//
//	jsonrpc.ServeStdio(ctx, d)
//	jsonrpc.ServeHTTP(ctx, d, ":8080")
package transport
