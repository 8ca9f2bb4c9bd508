package service

import (
	"context"
	"sync"
)

// RequestSequencer serializes one panel's requests: starting a request
// cancels the one still in flight, and only the latest request may update
// the display.
type RequestSequencer struct {
	mu      sync.Mutex
	current uint64
	cancel  context.CancelFunc
}

func (r *RequestSequencer) Begin(parent context.Context) (context.Context, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	r.current++
	r.cancel = cancel

	return ctx, r.current
}

// Finish reports whether seq is still the latest request and releases its
// context if so.
func (r *RequestSequencer) Finish(seq uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.current {
		return false
	}

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}

	return true
}
