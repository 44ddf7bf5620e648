package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/felixgeelhaar/jsonrpc-go/protocol"
)

// HTTP implements a JSON-RPC transport over HTTP POST. The request body is
// handed to the dispatcher as-is, so batches and malformed payloads are
// handled there, not here.
type HTTP struct {
	addr         string
	path         string
	readTimeout  time.Duration
	writeTimeout time.Duration

	cors            *CORSConfig
	shutdownTimeout time.Duration
	drainDelay      time.Duration

	mu         sync.RWMutex
	listenAddr string
	server     *http.Server
}

// HTTPOption configures the HTTP transport.
type HTTPOption func(*HTTP)

// WithReadTimeout sets the read timeout for HTTP requests.
func WithReadTimeout(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		h.readTimeout = d
	}
}

// WithWriteTimeout sets the write timeout for HTTP responses.
func WithWriteTimeout(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		h.writeTimeout = d
	}
}

// WithPath sets the URL path serving JSON-RPC requests. Default is "/rpc".
func WithPath(path string) HTTPOption {
	return func(h *HTTP) {
		h.path = path
	}
}

// NewHTTP creates a new HTTP transport listening on addr.
func NewHTTP(addr string, opts ...HTTPOption) *HTTP {
	h := &HTTP{
		addr:            addr,
		path:            "/rpc",
		readTimeout:     30 * time.Second,
		writeTimeout:    30 * time.Second,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Addr returns the configured address.
func (h *HTTP) Addr() string {
	return h.addr
}

// ListenAddr returns the actual address the server is listening on.
func (h *HTTP) ListenAddr() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.listenAddr
}

// Serve starts the HTTP server and handles requests until ctx is canceled.
func (h *HTTP) Serve(ctx context.Context, handler Handler) error {
	dr := newDrainState()
	httpHandler := h.createHandler(handler, dr)

	listener, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	h.mu.Lock()
	h.listenAddr = listener.Addr().String()
	h.server = &http.Server{
		Handler:      httpHandler,
		ReadTimeout:  h.readTimeout,
		WriteTimeout: h.writeTimeout,
	}
	h.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()
		// Drain in-flight requests before closing the listener.
		_ = dr.wait(shutdownCtx, h.drainDelay)
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// createHandler builds the HTTP mux serving the RPC endpoint and health check.
func (h *HTTP) createHandler(handler Handler, dr *drainState) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"draining":  dr.isDraining(),
			"in_flight": dr.inFlightCount(),
		})
	})

	mux.HandleFunc(h.path, func(w http.ResponseWriter, r *http.Request) {
		h.handleRPC(w, r, handler, dr)
	})

	var root http.Handler = mux
	if h.cors != nil {
		root = h.cors.handler(root)
	}
	return root
}

// handleRPC handles JSON-RPC payloads over HTTP POST.
func (h *HTTP) handleRPC(w http.ResponseWriter, r *http.Request, handler Handler, dr *drainState) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if !dr.begin() {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	defer dr.end()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		resp := protocol.ParseErrorResponse("", nil)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	// Expose connection details to middleware and handlers.
	ctx := protocol.ContextWithRequestMeta(r.Context(), protocol.RequestMeta{
		Transport:  "http",
		RemoteAddr: r.RemoteAddr,
		UserAgent:  r.UserAgent(),
	})

	out := handler.HandleJSON(ctx, body)
	if out == nil {
		// Notification-only payload: acknowledged, nothing to return.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}
