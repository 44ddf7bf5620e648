package protocol

import "context"

// requestMetaKey is the context key for request metadata.
type requestMetaKey struct{}

// RequestMeta describes the connection a request arrived over. Transports
// populate it so middleware and handlers can key decisions off the caller,
// such as rate limiting by remote address. The dispatcher core never reads
// it.
type RequestMeta struct {
	// Transport names the transport the request came in on
	// ("http", "websocket", "stdio").
	Transport string

	// RemoteAddr is the network address of the peer, when the transport
	// has one.
	RemoteAddr string

	// UserAgent is the client's User-Agent header, for HTTP-derived
	// transports.
	UserAgent string
}

// ContextWithRequestMeta returns a context carrying meta.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext returns the request metadata attached by the
// transport. ok is false when the request did not arrive over one.
func RequestMetaFromContext(ctx context.Context) (meta RequestMeta, ok bool) {
	meta, ok = ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta, ok
}
