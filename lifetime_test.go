package eventcore

import (
	"sync"
	"testing"
	"time"
)

func TestLifetimeTokenTryEnterBeforeUnregister(t *testing.T) {
	tok := NewLifetimeToken()
	if !tok.TryEnter() {
		t.Fatal("expected TryEnter to succeed on a live token")
	}
	tok.Exit()
}

func TestLifetimeTokenTryEnterFailsAfterUnregisterWait(t *testing.T) {
	tok := NewLifetimeToken()
	tok.UnregisterWait()
	if tok.TryEnter() {
		t.Fatal("expected TryEnter to fail once unregistered")
	}
}

// TestLifetimeTokenDrainsInFlight exercises the destructor-during-in-flight
// boundary scenario at the token level: a delivery that already passed
// TryEnter must be allowed to finish before UnregisterWait returns.
func TestLifetimeTokenDrainsInFlight(t *testing.T) {
	tok := NewLifetimeToken()
	if !tok.TryEnter() {
		t.Fatal("expected TryEnter to succeed")
	}

	done := make(chan struct{})
	var unregisterReturned bool
	var mu sync.Mutex

	go func() {
		tok.UnregisterWait()
		mu.Lock()
		unregisterReturned = true
		mu.Unlock()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	if unregisterReturned {
		mu.Unlock()
		t.Fatal("UnregisterWait returned before in-flight delivery exited")
	}
	mu.Unlock()

	tok.Exit()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("UnregisterWait did not return after Exit")
	}
}

func TestLifetimeTokenUnregisterWaitIdempotent(t *testing.T) {
	tok := NewLifetimeToken()
	tok.UnregisterWait()
	done := make(chan struct{})
	go func() {
		tok.UnregisterWait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second UnregisterWait call did not return promptly")
	}
}
