package facade

import (
	"context"
	"sync"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
)

// relayBacklog bounds how many undelivered events the relay buffers while
// the consumer is slow or absent.
const relayBacklog = 128

// Event is one inbound payload tagged with the PSM it arrived on.
type Event struct {
	Psm     coc.Psm
	Payload []byte
}

// Relay fans inbound events from every channel helper into the single
// streaming consumer, preserving publish order. At most one consumer may
// be attached at a time. When the buffer is full the oldest event is
// dropped and counted; publishers never block.
type Relay struct {
	mu       sync.Mutex
	buf      []Event
	notify   chan struct{}
	done     chan struct{}
	attached bool
	closed   bool
	dropped  uint64
}

// NewRelay ...
func NewRelay() *Relay {
	return &Relay{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Publish appends e to the event buffer and wakes the consumer, if any.
// Events published on a closed relay are discarded.
func (r *Relay) Publish(e Event) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if len(r.buf) >= relayBacklog {
		old := r.buf[0]
		r.buf = r.buf[1:]
		r.dropped++
		log.Warningf("relay: backlog full, dropped event for psm %d (%d dropped total)", old.Psm, r.dropped)
	}
	r.buf = append(r.buf, e)
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

// Attach claims the consumer side. It fails with ErrStreamBusy while
// another consumer is attached.
func (r *Relay) Attach() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrStopped
	}
	if r.attached {
		return ErrStreamBusy
	}
	r.attached = true
	return nil
}

// Detach releases the consumer side and discards undelivered events, so a
// later consumer only observes events published after it attached.
func (r *Relay) Detach() {
	r.mu.Lock()
	r.attached = false
	r.buf = nil
	r.mu.Unlock()
}

// Next blocks until an event is available, the context is done, or the
// relay is closed.
func (r *Relay) Next(ctx context.Context) (Event, error) {
	for {
		r.mu.Lock()
		if len(r.buf) > 0 {
			e := r.buf[0]
			r.buf = r.buf[1:]
			r.mu.Unlock()
			return e, nil
		}
		if r.closed {
			r.mu.Unlock()
			return Event{}, context.Canceled
		}
		r.mu.Unlock()

		select {
		case <-r.notify:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-r.done:
			return Event{}, context.Canceled
		}
	}
}

// Close tears the relay down, waking a blocked consumer and releasing
// publishers permanently.
func (r *Relay) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.buf = nil
	r.mu.Unlock()
	close(r.done)
}
