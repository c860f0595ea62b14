package destinfo

import (
	"context"
	"sync"
)

// Watcher serializes lookups for an input that can change while a fetch is
// in flight (the destination field). Begin cancels the previous lookup and
// hands back a commit gate; a commit from a superseded lookup is discarded,
// so a slow stale response can never overwrite a newer one.
type Watcher struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewWatcher returns a Watcher with no lookup in flight.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Begin starts a new lookup generation. Any previous in-flight lookup is
// cancelled immediately. The returned context should drive the fetch; the
// returned commit runs apply only if no later Begin has happened, and
// reports whether apply ran.
func (w *Watcher) Begin(parent context.Context) (ctx context.Context, commit func(apply func()) bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
	}
	ctx, w.cancel = context.WithCancel(parent)
	w.gen++
	gen := w.gen

	commit = func(apply func()) bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		if gen != w.gen {
			// A later Begin superseded this lookup; discard its result.
			return false
		}
		apply()
		return true
	}
	return ctx, commit
}

// Stop cancels any in-flight lookup and invalidates pending commits.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.gen++
}
