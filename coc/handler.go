package coc

import "sync"

// A Handler runs posted functions one at a time, in posting order, on its
// own goroutine. The channel layer invokes completion callbacks on the
// Handler the caller supplied at registration time, never on its own
// internal goroutines, so callbacks may take locks without reentrancy
// hazards. The queue is unbounded; a task running on the Handler may post
// further tasks to it without blocking.
type Handler struct {
	name string

	mu      sync.Mutex
	closed  bool
	queue   []func()
	wake    chan struct{}
	drained chan struct{}
}

// NewHandler creates and starts a Handler. name appears in logs only.
func NewHandler(name string) *Handler {
	h := &Handler{
		name:    name,
		wake:    make(chan struct{}, 1),
		drained: make(chan struct{}),
	}
	go h.loop()
	return h
}

func (h *Handler) loop() {
	for {
		h.mu.Lock()
		if len(h.queue) > 0 {
			f := h.queue[0]
			h.queue[0] = nil
			h.queue = h.queue[1:]
			h.mu.Unlock()
			f()
			continue
		}
		closed := h.closed
		h.mu.Unlock()
		if closed {
			close(h.drained)
			return
		}
		<-h.wake
	}
}

// Post queues f for execution. It reports false, and does not run f, once
// the Handler is closed. Post never blocks.
func (h *Handler) Post(f func()) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.queue = append(h.queue, f)
	h.mu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
	return true
}

// Close stops the Handler after the tasks already queued have run. It is
// idempotent and safe to call concurrently with Post.
func (h *Handler) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		<-h.drained
		return
	}
	h.closed = true
	h.mu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
	<-h.drained
}
