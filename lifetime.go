package eventcore

import "sync"

// LifetimeToken is the accounting primitive gating bridged delivery
// against unregistration. A delivery that successfully calls TryEnter is
// always allowed to finish before a concurrent UnregisterWait returns.
type LifetimeToken struct {
	mu           sync.Mutex
	cond         *sync.Cond
	unregistered bool
	inflight     int
}

// NewLifetimeToken constructs a live (not unregistered) token.
func NewLifetimeToken() *LifetimeToken {
	t := &LifetimeToken{}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// TryEnter reports whether the caller may proceed with a bridged
// delivery. It fails once the token has been unregistered; otherwise it
// counts the delivery as in flight.
func (t *LifetimeToken) TryEnter() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unregistered {
		return false
	}
	t.inflight++
	return true
}

// Exit marks one in-flight delivery as complete. If unregistration is
// waiting for quiescence, it is woken once inflight reaches zero.
func (t *LifetimeToken) Exit() {
	t.mu.Lock()
	t.inflight--
	wake := t.unregistered && t.inflight == 0
	t.mu.Unlock()
	if wake {
		t.cond.Broadcast()
	}
}

// UnregisterWait marks the token unregistered — no further TryEnter will
// succeed — and blocks until every delivery already in flight has called
// Exit. Safe to call more than once; later calls return immediately.
func (t *LifetimeToken) UnregisterWait() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unregistered = true
	for t.inflight != 0 {
		t.cond.Wait()
	}
}

// Unregistered reports whether UnregisterWait has been called.
func (t *LifetimeToken) Unregistered() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unregistered
}
