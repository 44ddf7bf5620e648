package transport

import (
	"context"
	"sync"
	"time"
)

// drainState tracks in-flight RPC requests so the HTTP transport can stop
// accepting new work during shutdown and wait for accepted work to finish.
// Completion is signaled by the last request ending, not by polling.
type drainState struct {
	mu       sync.Mutex
	draining bool
	inFlight int
	idle     chan struct{}
}

func newDrainState() *drainState {
	return &drainState{idle: make(chan struct{})}
}

// begin records a new request. It reports false once draining has started;
// the caller must reject the request and skip the matching end call.
func (d *drainState) begin() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.draining {
		return false
	}
	d.inFlight++
	return true
}

// end records a finished request. The last one out closes the idle channel
// when a drain is waiting on it.
func (d *drainState) end() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight--
	if d.draining && d.inFlight == 0 {
		close(d.idle)
	}
}

func (d *drainState) isDraining() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draining
}

func (d *drainState) inFlightCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inFlight
}

// wait flips the tracker into draining mode after delay and blocks until
// every in-flight request has completed or ctx expires. The delay gives
// load balancers time to notice the server leaving the pool while it still
// accepts traffic.
func (d *drainState) wait(ctx context.Context, delay time.Duration) error {
	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	d.mu.Lock()
	if !d.draining {
		d.draining = true
		if d.inFlight == 0 {
			close(d.idle)
		}
	}
	d.mu.Unlock()

	select {
	case <-d.idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WithShutdownTimeout sets how long Serve waits for in-flight requests
// when the context is canceled. Default is 30 seconds.
func WithShutdownTimeout(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		h.shutdownTimeout = d
	}
}

// WithShutdownDrainDelay delays the start of draining after the context is
// canceled, so external health checks can mark the server down first.
func WithShutdownDrainDelay(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		h.drainDelay = d
	}
}
