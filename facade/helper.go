package facade

import (
	"sync"
	"time"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
)

const (
	// defaultConnectTimeout bounds how long a control call waits for a
	// channel to open. The underlying attempt is not cancelled on expiry;
	// a late completion is absorbed into state when it arrives.
	defaultConnectTimeout = 2 * time.Second

	// defaultSendTimeout bounds the wait for the outbound queue to accept
	// the pending unit.
	defaultSendTimeout = 500 * time.Millisecond
)

// helper drives a single PSM: listener registration, outbound connect, the
// one open channel, and the single-slot send protocol. Control calls block
// on bounded waits that are resolved by callbacks arriving on the facade
// handler; all shared state is guarded by mu.
type helper struct {
	psm     coc.Psm
	mgr     coc.Manager
	handler *coc.Handler
	relay   *Relay

	// sendSlot holds at most one token: the in-flight send. Try-acquire
	// semantics make a second Send fail fast instead of queueing.
	sendSlot chan struct{}

	connectTimeout time.Duration
	sendTimeout    time.Duration

	mu       sync.Mutex
	listener coc.Listener
	ch       coc.Channel
	ready    chan struct{} // lazily created; closed and cleared on open or connect failure
	failed   bool                 // current attempt only
	lastFail coc.ConnectionResult // sticky across attempts
}

func newHelper(psm coc.Psm, mgr coc.Manager, handler *coc.Handler, relay *Relay) *helper {
	return &helper{
		psm:      psm,
		mgr:      mgr,
		handler:  handler,
		relay:    relay,
		sendSlot: make(chan struct{}, 1),

		connectTimeout: defaultConnectTimeout,
		sendTimeout:    defaultSendTimeout,
	}
}

// register issues the asynchronous listener registration. Completion
// arrives later on the facade handler; EnablePort does not wait for it.
func (h *helper) register() {
	h.mgr.RegisterListener(h.psm, h.onRegistered, h.onOpen, h.handler)
}

// unregister releases the listener and the receive path so no callback
// fires into a removed helper. The open channel, if any, is left alone;
// closing it remains the driver's business.
func (h *helper) unregister() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener != nil {
		h.listener.Unregister()
		h.listener = nil
	}
	if h.ch != nil {
		h.ch.Endpoint().UnregisterDequeue()
	}
}

// Connect issues an outbound connect and waits, bounded, for whichever
// completion callback arrives first. Expiry reports ErrConnectTimeout; it
// does not retract the attempt, and a completion arriving afterwards still
// updates state under mu.
func (h *helper) Connect(peer coc.Addr) error {
	h.mu.Lock()
	h.failed = false
	h.mu.Unlock()

	h.mgr.Connect(peer, h.psm, h.onOpen, h.onConnectFailed, h.handler)

	deadline := time.NewTimer(h.connectTimeout)
	defer deadline.Stop()
	for {
		h.mu.Lock()
		if h.ch != nil {
			h.mu.Unlock()
			return nil
		}
		if h.failed {
			reason := h.lastFail
			h.mu.Unlock()
			return &ConnectFailedError{Reason: reason}
		}
		ready := h.readyLocked()
		h.mu.Unlock()

		select {
		case <-ready:
		case <-deadline.C:
			log.Warningf("channel is not open for psm %d", h.psm)
			return ErrConnectTimeout
		}
	}
}

// Close requests closure of the open channel. Confirmation is asynchronous;
// the close callback clears the channel when it lands.
func (h *helper) Close() error {
	h.mu.Lock()
	ch := h.ch
	h.mu.Unlock()
	if ch == nil {
		return ErrNotOpen
	}
	return ch.Close()
}

// Send runs the single-slot send protocol: wait (bounded) for a channel,
// claim the slot, register a one-shot enqueue-ready callback carrying the
// payload, and wait (bounded) for its completion signal. The callback runs
// on the facade handler; a completion firing after the waiter gave up is
// absorbed by the buffered signal channel.
func (h *helper) Send(payload []byte) error {
	ch, err := h.waitChannel(h.connectTimeout)
	if err != nil {
		return err
	}

	select {
	case h.sendSlot <- struct{}{}:
	default:
		return ErrSendBusy
	}

	done := make(chan struct{}, 1)
	ep := ch.Endpoint()
	ep.RegisterEnqueueReady(h.handler, func() []byte {
		ep.UnregisterEnqueueReady()
		// Non-blocking: onClose may already have reclaimed the slot.
		select {
		case <-h.sendSlot:
		default:
		}
		select {
		case done <- struct{}{}:
		default:
		}
		return payload
	})

	deadline := time.NewTimer(h.sendTimeout)
	defer deadline.Stop()
	select {
	case <-done:
		return nil
	case <-deadline.C:
		log.Errorf("can't send packet for psm %d: previous packet wasn't sent yet", h.psm)
		return ErrSendTimeout
	}
}

// waitChannel waits, bounded, for the channel to appear. A helper whose
// channel never opens reports ErrNotOpen.
func (h *helper) waitChannel(d time.Duration) (coc.Channel, error) {
	deadline := time.NewTimer(d)
	defer deadline.Stop()
	for {
		h.mu.Lock()
		if h.ch != nil {
			ch := h.ch
			h.mu.Unlock()
			return ch, nil
		}
		ready := h.readyLocked()
		h.mu.Unlock()

		select {
		case <-ready:
		case <-deadline.C:
			return nil, ErrNotOpen
		}
	}
}

// readyLocked returns the wake-up channel for blocked control calls,
// creating it on first use. Callers must hold mu.
func (h *helper) readyLocked() chan struct{} {
	if h.ready == nil {
		h.ready = make(chan struct{})
	}
	return h.ready
}

// signalLocked wakes every blocked control call. Callers must hold mu.
func (h *helper) signalLocked() {
	if h.ready != nil {
		close(h.ready)
		h.ready = nil
	}
}

func (h *helper) onRegistered(result coc.RegistrationResult, l coc.Listener) {
	if result != coc.RegistrationSuccess {
		log.Errorf("service registration failed for psm %d: %s", h.psm, result)
		return
	}
	h.mu.Lock()
	h.listener = l
	h.mu.Unlock()
}

// onOpen lands on the facade handler for both inbound and outbound
// channels. It arms the receive path and wakes any blocked Connect/Send.
func (h *helper) onOpen(ch coc.Channel) {
	h.mu.Lock()
	if h.ch != nil {
		// Only one channel per PSM. A second open (a peer connecting
		// while ours is up) is refused by closing it.
		h.mu.Unlock()
		log.Warningf("psm %d already has an open channel, closing the new one", h.psm)
		ch.Close()
		return
	}
	h.ch = ch
	h.signalLocked()
	// Any token still held belongs to a send on the previous channel,
	// whose callback died with it.
	select {
	case <-h.sendSlot:
	default:
	}
	h.mu.Unlock()

	ch.RegisterCloseCallback(h.handler, h.onClose)
	ch.Endpoint().RegisterDequeue(h.handler, h.onIncoming)
}

// onClose disarms the receive path and clears the channel. The control
// caller is not notified synchronously; the next Send or Close observes
// ErrNotOpen.
func (h *helper) onClose(reason error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ch == nil {
		return
	}
	ep := h.ch.Endpoint()
	ep.UnregisterDequeue()
	ep.UnregisterEnqueueReady()
	h.ch = nil
	// A send registered on the dead channel will never run its callback;
	// reclaim the slot so the port isn't busy forever.
	select {
	case <-h.sendSlot:
	default:
	}
}

func (h *helper) onConnectFailed(result coc.ConnectionResult) {
	h.mu.Lock()
	h.ch = nil
	h.failed = true
	h.lastFail = result
	h.signalLocked()
	h.mu.Unlock()
}

// onIncoming drains exactly one buffered unit per callback. The receive
// path is edge triggered: assuming more units are buffered would lose the
// one-callback-one-unit pairing.
func (h *helper) onIncoming() {
	h.mu.Lock()
	ch := h.ch
	h.mu.Unlock()
	if ch == nil {
		return
	}
	unit, ok := ch.Endpoint().TryDequeueOne()
	if !ok {
		return
	}
	h.relay.Publish(Event{Psm: h.psm, Payload: unit})
}

// lastFailure returns the most recent connect refusal reason, retained
// across later attempts. ResultSuccess means no attempt has failed yet.
func (h *helper) lastFailure() coc.ConnectionResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastFail
}
