// Package registry tracks in-flight transfers so they can be canceled, one
// cancellation handle per caller-visible file name. A Registry instance is
// owned by the service that created it; there is no package-level state.
package registry

import (
	"context"
	"sync"
)

// Handle is the cancellation capability of one in-flight transfer.
type Handle struct {
	key    string
	cancel context.CancelFunc
}

// Registry maps transfer keys to cancellation handles. Safe for concurrent
// use.
type Registry struct {
	mu     sync.Mutex
	active map[string]*Handle
}

func New() *Registry {
	return &Registry{active: make(map[string]*Handle)}
}

// Begin derives a cancelable child of ctx and registers its handle under
// key. A prior in-flight transfer for the same key is canceled and replaced,
// so at most one live handle exists per key.
func (r *Registry) Begin(ctx context.Context, key string) (context.Context, *Handle) {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{key: key, cancel: cancel}

	r.mu.Lock()
	prev := r.active[key]
	r.active[key] = h
	r.mu.Unlock()

	if prev != nil {
		prev.cancel()
	}
	return ctx, h
}

// Finish removes h and releases its context. Only the currently registered
// handle is removed, so a transfer that was already replaced cannot evict
// its successor's entry. Safe to call more than once.
func (r *Registry) Finish(h *Handle) {
	if h == nil {
		return
	}

	r.mu.Lock()
	if r.active[h.key] == h {
		delete(r.active, h.key)
	}
	r.mu.Unlock()

	h.cancel()
}

// Cancel signals the transfer registered under key and removes its entry.
// Returns false without touching state when key was never registered.
func (r *Registry) Cancel(key string) bool {
	r.mu.Lock()
	h, ok := r.active[key]
	if ok {
		delete(r.active, key)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	h.cancel()
	return true
}

// CancelAll cancels every in-flight transfer and returns how many there
// were. Calling it with nothing in flight returns 0.
func (r *Registry) CancelAll() int {
	r.mu.Lock()
	handles := make([]*Handle, 0, len(r.active))
	for key, h := range r.active {
		handles = append(handles, h)
		delete(r.active, key)
	}
	r.mu.Unlock()

	for _, h := range handles {
		h.cancel()
	}
	return len(handles)
}

// Len reports the number of in-flight transfers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
