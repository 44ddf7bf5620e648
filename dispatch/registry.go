// Package dispatch provides the core JSON-RPC 2.0 request dispatcher.
package dispatch

import (
	"context"
	"sync"
)

// HandlerFunc is the signature for registered method handlers. The params
// value is the decoded params field of the request (a slice, a map, or nil).
// Returning a *protocol.Error controls the error response sent to the
// caller; any other error is reported as an internal error.
type HandlerFunc func(ctx context.Context, params any) (any, error)

// FallbackFunc resolves methods that have no registry entry. The boolean
// result is an explicit presence marker: returning false is equivalent to
// method not found, which keeps a legitimate nil result distinguishable
// from "no result".
type FallbackFunc func(ctx context.Context, method string, params any) (any, bool, error)

// Registry maps method names to handlers, with an optional single fallback
// resolver consulted when no entry matches.
type Registry struct {
	mu       sync.RWMutex
	methods  map[string]HandlerFunc
	fallback FallbackFunc
}

// NewRegistry creates an empty method registry.
func NewRegistry() *Registry {
	return &Registry{
		methods: make(map[string]HandlerFunc),
	}
}

// Register merges the given methods into the table. Later registrations for
// the same name overwrite earlier ones.
func (r *Registry) Register(methods map[string]HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, handler := range methods {
		r.methods[name] = handler
	}
}

// Lookup retrieves a handler by method name.
func (r *Registry) Lookup(name string) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.methods[name]
	return handler, ok
}

// Methods exposes the live method table by reference. Callers may add or
// remove entries directly; serializing such mutation against in-flight
// dispatch is their responsibility.
func (r *Registry) Methods() map[string]HandlerFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.methods
}

// SetFallback replaces the fallback resolver. At most one is active at a
// time; pass nil to remove it.
func (r *Registry) SetFallback(fallback FallbackFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = fallback
}

// Fallback returns the current fallback resolver, or nil.
func (r *Registry) Fallback() FallbackFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}
