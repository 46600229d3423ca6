// Package reaper runs the periodic sweep that evicts expired sessions and
// cache entries, bounding memory even for entries nobody touches again.
package reaper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"restaurant-chat-service/pkg/log"
)

// DefaultInterval is the sweep interval used when none is configured.
const DefaultInterval = time.Minute

// Sweepable is any store that can evict its expired entries.
type Sweepable interface {
	RemoveExpired() int
}

// Target pairs a sweepable store with a name for logging.
type Target struct {
	Name  string
	Store Sweepable
}

// Reaper periodically sweeps its targets until stopped. Foreground traffic
// is never blocked beyond the stores' own per-entry locking.
type Reaper struct {
	l        log.Logger
	targets  []Target
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// New creates a reaper over the given targets.
func New(l log.Logger, interval time.Duration, targets ...Target) *Reaper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reaper{
		l:        l,
		targets:  targets,
		interval: interval,
	}
}

// Start begins the periodic sweep. Calling Start on a running reaper is a
// no-op.
func (r *Reaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}

	sweepCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true

	go r.run(sweepCtx)
}

// Stop cancels the sweep loop and waits for it to finish.
func (r *Reaper) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	cancel()
	<-done
}

// IsRunning reports whether the sweep loop is active.
func (r *Reaper) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Reaper) run(ctx context.Context) {
	defer func() {
		r.mu.Lock()
		r.running = false
		close(r.done)
		r.mu.Unlock()
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Initial sweep so a long interval doesn't delay the first cleanup.
	r.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			if r.l != nil {
				r.l.Info(ctx, "reaper stopping")
			}
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep runs one pass over every target. A failure in one target never
// aborts the sweep of the others.
func (r *Reaper) Sweep(ctx context.Context) {
	for _, target := range r.targets {
		removed, err := r.sweepOne(target)
		if err != nil {
			if r.l != nil {
				r.l.Errorf(ctx, "reaper: sweeping %s: %v", target.Name, err)
			}
			continue
		}
		if removed > 0 && r.l != nil {
			r.l.Infof(ctx, "reaper: removed %d expired entries from %s", removed, target.Name)
		}
	}
}

func (r *Reaper) sweepOne(target Target) (removed int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = panicError{target: target.Name, value: rec}
		}
	}()
	return target.Store.RemoveExpired(), nil
}

type panicError struct {
	target string
	value  any
}

func (e panicError) Error() string {
	return fmt.Sprintf("panic sweeping %s: %v", e.target, e.value)
}
