package coc

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRunsInOrder(t *testing.T) {
	h := NewHandler("test")

	var mu sync.Mutex
	var got []int
	for i := 0; i < 10; i++ {
		i := i
		require.True(t, h.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}))
	}
	h.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestHandlerCloseDrainsQueued(t *testing.T) {
	h := NewHandler("test")

	ran := false
	require.True(t, h.Post(func() { ran = true }))
	h.Close()

	assert.True(t, ran, "queued task should run before Close returns")
}

func TestHandlerPostAfterClose(t *testing.T) {
	h := NewHandler("test")
	h.Close()

	assert.False(t, h.Post(func() {
		t.Error("task ran on a closed handler")
	}))
}

func TestHandlerPostFromTask(t *testing.T) {
	h := NewHandler("test")

	// A running task fanning out a burst of follow-up work must never
	// wedge its own Handler, no matter the burst size.
	const n = 100
	var mu sync.Mutex
	ran := 0
	done := make(chan struct{})
	require.True(t, h.Post(func() {
		for i := 0; i < n; i++ {
			h.Post(func() {
				mu.Lock()
				ran++
				if ran == n {
					close(done)
				}
				mu.Unlock()
			})
		}
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks posted from a running task never drained")
	}
	h.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, n, ran)
}

func TestHandlerCloseIdempotent(t *testing.T) {
	h := NewHandler("test")
	h.Close()
	h.Close()
}
