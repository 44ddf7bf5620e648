package transport

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig controls browser cross-origin access to the RPC endpoint.
// The endpoint only accepts POST, so preflight responses always advertise
// POST and OPTIONS; the method list is not configurable.
type CORSConfig struct {
	// Origins lists allowed origins. A single "*" entry allows any origin.
	Origins []string

	// Headers lists request headers permitted on preflight.
	// Default: Content-Type.
	Headers []string

	// ExposeHeaders lists response headers the browser may read.
	ExposeHeaders []string

	// AllowCredentials permits cookies and authorization headers. Browsers
	// reject "*" on credentialed responses, so a wildcard config echoes the
	// request origin instead.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds. Default: 86400.
	MaxAge int
}

// WithCORS enables cross-origin access with the given configuration.
func WithCORS(config CORSConfig) HTTPOption {
	return func(h *HTTP) {
		h.cors = &config
	}
}

// WithCORSOrigins enables cross-origin access for the given origins.
// Pass "*" to allow any origin.
func WithCORSOrigins(origins ...string) HTTPOption {
	return WithCORS(CORSConfig{Origins: origins})
}

// handler wraps next with the CORS header logic.
func (c CORSConfig) handler(next http.Handler) http.Handler {
	headers := strings.Join(c.Headers, ", ")
	if headers == "" {
		headers = "Content-Type"
	}
	expose := strings.Join(c.ExposeHeaders, ", ")
	maxAge := "86400"
	if c.MaxAge > 0 {
		maxAge = strconv.Itoa(c.MaxAge)
	}

	wildcard := false
	allowed := make(map[string]bool, len(c.Origins))
	for _, origin := range c.Origins {
		if origin == "*" {
			wildcard = true
		}
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		switch {
		case wildcard && !c.AllowCredentials:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case wildcard || allowed[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
		default:
			// Disallowed origins get no CORS headers; enforcement is the
			// browser's job, so the request itself still goes through.
			next.ServeHTTP(w, r)
			return
		}
		if c.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", headers)
			w.Header().Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if expose != "" {
			w.Header().Set("Access-Control-Expose-Headers", expose)
		}
		next.ServeHTTP(w, r)
	})
}
