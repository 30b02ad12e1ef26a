// Package lifecycle coordinates subsystem startup, readiness, and shutdown.
package lifecycle

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"
)

// ReadinessChecker reports whether a subsystem is ready to serve traffic.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator runs startup and shutdown hooks and aggregates subsystem readiness.
type Coordinator struct {
	ctx        context.Context
	cancel     context.CancelFunc
	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup

	mu      sync.RWMutex
	started bool
	checks  map[string]ReadinessChecker
}

// New creates a Coordinator with a cancellable context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
		checks: make(map[string]ReadinessChecker),
	}
}

// Context returns the coordinator's context, cancelled on shutdown.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup registers a function to run concurrently during startup.
func (c *Coordinator) OnStartup(fn func()) {
	c.startupWg.Go(fn)
}

// OnShutdown registers a function to run concurrently during shutdown.
// Shutdown hooks should block on <-c.Context().Done() before executing cleanup.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Go(fn)
}

// Check registers a named readiness probe. A later registration under the
// same name replaces the earlier one.
func (c *Coordinator) Check(name string, rc ReadinessChecker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = rc
}

// Status reports each registered probe by name.
func (c *Coordinator) Status() map[string]bool {
	c.mu.RLock()
	checks := maps.Clone(c.checks)
	c.mu.RUnlock()

	status := make(map[string]bool, len(checks))
	for name, rc := range checks {
		status[name] = rc.Ready()
	}
	return status
}

// Ready reports whether startup has completed and every registered probe passes.
func (c *Coordinator) Ready() bool {
	c.mu.RLock()
	started := c.started
	c.mu.RUnlock()

	if !started {
		return false
	}
	for _, ok := range c.Status() {
		if !ok {
			return false
		}
	}
	return true
}

// WaitForStartup blocks until all startup hooks have completed.
func (c *Coordinator) WaitForStartup() {
	c.startupWg.Wait()
	c.mu.Lock()
	c.started = true
	c.mu.Unlock()
}

// Shutdown cancels the context and waits for shutdown hooks to complete
// within the given timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
