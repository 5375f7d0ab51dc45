package eventcore

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue[int]()
	for i := 1; i <= 5; i++ {
		q.Push(i)
	}
	for i := 1; i <= 5; i++ {
		v, ok := q.TryNext()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := q.TryNext()
	assert.False(t, ok)
}

func TestEventQueueIsEmpty(t *testing.T) {
	q := NewEventQueue[string]()
	if !q.IsEmpty() {
		t.Fatal("expected new queue to be empty")
	}
	q.Push("x")
	if q.IsEmpty() {
		t.Fatal("expected non-empty queue after push")
	}
}

func TestEventQueueWaitNextBlocksUntilPush(t *testing.T) {
	q := NewEventQueue[int]()
	var wg sync.WaitGroup
	wg.Add(1)
	var got int
	go func() {
		defer wg.Done()
		got = q.WaitNext()
	}()

	time.Sleep(20 * time.Millisecond)
	q.Push(42)

	wg.Wait()
	assert.Equal(t, 42, got)
}
