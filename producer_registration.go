package eventcore

import "sync"

// ProducerRegistration is the per (producer, bus) handle holding the
// dispatchers a bus has associated with this producer. A producer that
// holds several registrations (one per bus it publishes to) dispatches
// through each independently.
type ProducerRegistration[T any] struct {
	mu           sync.Mutex
	cond         *sync.Cond
	dispatchers  []Dispatcher[T]
	unregistered bool
	inflight     int
	onUnregister func()
	log          Logger
}

func newProducerRegistration[T any](log Logger, onUnregister func()) *ProducerRegistration[T] {
	r := &ProducerRegistration[T]{
		onUnregister: onUnregister,
		log:          log,
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// Dispatch delivers event to every live dispatcher in registration
// order, then returns once all of them have been called.
func (r *ProducerRegistration[T]) Dispatch(event T) {
	r.mu.Lock()
	if r.unregistered {
		r.mu.Unlock()
		return
	}
	live := make([]Dispatcher[T], len(r.dispatchers))
	copy(live, r.dispatchers)
	r.inflight++
	r.mu.Unlock()

	for _, d := range live {
		d.deliver(event)
	}

	r.mu.Lock()
	r.inflight--
	wake := r.unregistered && r.inflight == 0
	r.mu.Unlock()
	if wake {
		r.cond.Broadcast()
	}
}

// AddDispatcher associates d with this registration and returns the
// handle RemoveDispatcher later needs to drop it. d is wrapped in a
// Bridge against a token of its own: every dispatcher a bus hands to a
// producer registration is a Bridge, never the raw Direct/Queue variant,
// and giving each dispatcher its own token (rather than sharing one
// across the registration) lets RemoveDispatcher drain exactly the
// dispatcher it removes, independent of any other dispatcher still live
// on this registration.
func (r *ProducerRegistration[T]) AddDispatcher(d Dispatcher[T]) Dispatcher[T] {
	bridged := newDispatcherBridge[T](NewLifetimeToken(), d)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dispatchers = append(r.dispatchers, bridged)
	return bridged
}

// RemoveDispatcher drops the handle returned by a prior AddDispatcher,
// if still present, and blocks until any delivery already in flight
// through it has finished.
func (r *ProducerRegistration[T]) RemoveDispatcher(handle Dispatcher[T]) {
	r.mu.Lock()
	removed := false
	out := r.dispatchers[:0]
	for _, existing := range r.dispatchers {
		if existing == handle {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	r.dispatchers = out
	r.mu.Unlock()

	if bridge, ok := handle.(*dispatcherBridge[T]); ok && removed {
		bridge.token.UnregisterWait()
	}
}

// Unregister detaches the registration from its bus and blocks until any
// in-flight Dispatch call has finished. Idempotent.
func (r *ProducerRegistration[T]) Unregister() {
	r.mu.Lock()
	if r.unregistered {
		r.mu.Unlock()
		return
	}
	r.unregistered = true
	cb := r.onUnregister
	r.onUnregister = nil
	r.mu.Unlock()

	if cb != nil {
		cb()
	}

	r.mu.Lock()
	r.dispatchers = nil
	for r.inflight != 0 {
		r.cond.Wait()
	}
	r.mu.Unlock()
}

// DisableUnregisterCallback clears the stored external callback without
// otherwise changing state. Used by a bus destructor so the registration's
// later Unregister does not call back into a bus that is being torn down.
func (r *ProducerRegistration[T]) DisableUnregisterCallback() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUnregister = nil
}

// Unregistered reports whether Unregister has been called.
func (r *ProducerRegistration[T]) Unregistered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unregistered
}
