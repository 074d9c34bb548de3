package prompt

import (
	"errors"
	"sync"
)

// ErrResolveReused is returned when a widget invokes its resolver more than
// once. A resolver advances the flow exactly once; a second call is a
// contract violation by the widget.
var ErrResolveReused = errors.New("prompt: resolve invoked more than once")

// Resolver is the one-shot capability a widget uses to report its outcome.
// The flow driver mints a fresh Resolver per rendered page.
type Resolver struct {
	mu   sync.Mutex
	fn   func(Outcome)
	used bool
}

// NewResolver wraps fn in a one-shot resolver. fn must not be nil.
func NewResolver(fn func(Outcome)) *Resolver {
	return &Resolver{fn: fn}
}

// Resolve delivers the outcome to the flow. The first call wins; every
// subsequent call returns ErrResolveReused without invoking the callback.
func (r *Resolver) Resolve(o Outcome) error {
	r.mu.Lock()
	if r.used {
		r.mu.Unlock()
		return ErrResolveReused
	}
	r.used = true
	fn := r.fn
	r.mu.Unlock()
	fn(o)
	return nil
}

// Used reports whether the resolver has fired.
func (r *Resolver) Used() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used
}
