package eventcore

import "sync"

// ListenerRegistration is the per (listener, bus) handle holding a
// single dispatcher (a Bridge wrapping Direct or Queue) and the
// LifetimeToken that Bridge drains against.
type ListenerRegistration[T any] struct {
	mu           sync.Mutex
	dispatcher   Dispatcher[T]
	token        *LifetimeToken
	unregistered bool
	onUnregister func()
	log          Logger
}

func newListenerRegistration[T any](log Logger, dispatcher Dispatcher[T], token *LifetimeToken, onUnregister func()) *ListenerRegistration[T] {
	return &ListenerRegistration[T]{
		dispatcher:   dispatcher,
		token:        token,
		onUnregister: onUnregister,
		log:          log,
	}
}

// Dispatch forwards event to the stored Bridge, which handles in-flight
// accounting against the token.
func (r *ListenerRegistration[T]) Dispatch(event T) {
	r.mu.Lock()
	d := r.dispatcher
	r.mu.Unlock()
	if d == nil {
		return
	}
	d.deliver(event)
}

// Unregister detaches from the bus (invoking the external callback
// outside the registration's own lock) and then blocks on the token's
// UnregisterWait so any bridged call that already passed TryEnter
// completes before returning. Idempotent.
func (r *ListenerRegistration[T]) Unregister() {
	r.mu.Lock()
	if r.unregistered {
		r.mu.Unlock()
		r.token.UnregisterWait()
		return
	}
	r.unregistered = true
	cb := r.onUnregister
	r.onUnregister = nil
	token := r.token
	r.mu.Unlock()

	if cb != nil {
		cb()
	}

	r.mu.Lock()
	r.dispatcher = nil
	r.mu.Unlock()

	token.UnregisterWait()
}

// DisableUnregisterCallback clears the stored external callback without
// otherwise changing state.
func (r *ListenerRegistration[T]) DisableUnregisterCallback() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUnregister = nil
}

// Unregistered reports whether Unregister has been called.
func (r *ListenerRegistration[T]) Unregistered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unregistered
}
