package facade

import (
	"sync"
	"testing"
	"time"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
)

// fakeManager records registration and connect requests so tests can fire
// the completion callbacks from their own goroutines, standing in for the
// channel layer's asynchronous context.
type fakeManager struct {
	mu            sync.Mutex
	registrations []*fakeRegistration
	connects      chan *fakeConnect
}

func newFakeManager() *fakeManager {
	return &fakeManager{connects: make(chan *fakeConnect, 8)}
}

type fakeRegistration struct {
	psm          coc.Psm
	onRegistered func(coc.RegistrationResult, coc.Listener)
	onOpen       func(coc.Channel)
	handler      *coc.Handler
}

type fakeConnect struct {
	peer     coc.Addr
	psm      coc.Psm
	onOpen   func(coc.Channel)
	onFailed func(coc.ConnectionResult)
	handler  *coc.Handler
}

func (m *fakeManager) RegisterListener(psm coc.Psm, onRegistered func(coc.RegistrationResult, coc.Listener), onOpen func(coc.Channel), h *coc.Handler) {
	m.mu.Lock()
	m.registrations = append(m.registrations, &fakeRegistration{
		psm:          psm,
		onRegistered: onRegistered,
		onOpen:       onOpen,
		handler:      h,
	})
	m.mu.Unlock()
}

func (m *fakeManager) Connect(peer coc.Addr, psm coc.Psm, onOpen func(coc.Channel), onFailed func(coc.ConnectionResult), h *coc.Handler) {
	m.connects <- &fakeConnect{
		peer:     peer,
		psm:      psm,
		onOpen:   onOpen,
		onFailed: onFailed,
		handler:  h,
	}
}

// awaitConnect returns the next recorded connect request.
func (m *fakeManager) awaitConnect(t *testing.T) *fakeConnect {
	t.Helper()
	select {
	case c := <-m.connects:
		return c
	case <-time.After(time.Second):
		t.Fatal("no connect request issued")
		return nil
	}
}

func (m *fakeManager) registration(t *testing.T, psm coc.Psm) *fakeRegistration {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.registrations {
		if r.psm == psm {
			return r
		}
	}
	t.Fatalf("no listener registered for psm %d", psm)
	return nil
}

type fakeListener struct {
	psm          coc.Psm
	mu           sync.Mutex
	unregistered bool
}

func (l *fakeListener) Psm() coc.Psm { return l.psm }

func (l *fakeListener) Unregister() {
	l.mu.Lock()
	l.unregistered = true
	l.mu.Unlock()
}

func (l *fakeListener) isUnregistered() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.unregistered
}

// fakeChannel is both the channel and its endpoint, like the loopback
// implementation. Tests control when readiness callbacks fire.
type fakeChannel struct {
	mu        sync.Mutex
	closed    bool
	inbound   [][]byte
	sent      [][]byte
	closeH    *coc.Handler
	onClose   func(error)
	dequeueH  *coc.Handler
	onDequeue func()
	enqueueH  *coc.Handler
	onEnqueue func() []byte

	// enqueueArmed receives one token per RegisterEnqueueReady call.
	enqueueArmed chan struct{}
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{enqueueArmed: make(chan struct{}, 8)}
}

func (c *fakeChannel) RemoteAddr() coc.Addr { return coc.NewAddr("11:22:33:44:55:66") }

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func (c *fakeChannel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *fakeChannel) RegisterCloseCallback(h *coc.Handler, f func(error)) {
	c.mu.Lock()
	c.closeH, c.onClose = h, f
	c.mu.Unlock()
}

func (c *fakeChannel) Endpoint() coc.Endpoint { return c }

func (c *fakeChannel) RegisterDequeue(h *coc.Handler, f func()) {
	c.mu.Lock()
	c.dequeueH, c.onDequeue = h, f
	c.mu.Unlock()
}

func (c *fakeChannel) UnregisterDequeue() {
	c.mu.Lock()
	c.dequeueH, c.onDequeue = nil, nil
	c.mu.Unlock()
}

func (c *fakeChannel) TryDequeueOne() ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.inbound) == 0 {
		return nil, false
	}
	unit := c.inbound[0]
	c.inbound = c.inbound[1:]
	return unit, true
}

func (c *fakeChannel) RegisterEnqueueReady(h *coc.Handler, f func() []byte) {
	c.mu.Lock()
	c.enqueueH, c.onEnqueue = h, f
	c.mu.Unlock()
	c.enqueueArmed <- struct{}{}
}

func (c *fakeChannel) UnregisterEnqueueReady() {
	c.mu.Lock()
	c.enqueueH, c.onEnqueue = nil, nil
	c.mu.Unlock()
}

func (c *fakeChannel) hasDequeue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.onDequeue != nil
}

// fireClose delivers the close notification the way the layer would: on
// the handler supplied at registration.
func (c *fakeChannel) fireClose(t *testing.T, reason error) {
	t.Helper()
	c.mu.Lock()
	h, f := c.closeH, c.onClose
	c.mu.Unlock()
	if h == nil || f == nil {
		t.Fatal("no close callback registered")
	}
	h.Post(func() { f(reason) })
}

// push buffers an inbound unit and fires the dequeue callback once.
func (c *fakeChannel) push(t *testing.T, unit []byte) {
	t.Helper()
	c.mu.Lock()
	c.inbound = append(c.inbound, unit)
	h, f := c.dequeueH, c.onDequeue
	c.mu.Unlock()
	if h == nil || f == nil {
		t.Fatal("no dequeue callback registered")
	}
	h.Post(f)
}

// awaitEnqueueArmed waits for a pending RegisterEnqueueReady.
func (c *fakeChannel) awaitEnqueueArmed(t *testing.T) {
	t.Helper()
	select {
	case <-c.enqueueArmed:
	case <-time.After(time.Second):
		t.Fatal("enqueue-ready callback never registered")
	}
}

// fireEnqueueReady runs the armed builder on its handler and collects the
// unit it returns.
func (c *fakeChannel) fireEnqueueReady(t *testing.T) {
	t.Helper()
	c.mu.Lock()
	h, f := c.enqueueH, c.onEnqueue
	c.mu.Unlock()
	if h == nil || f == nil {
		t.Fatal("no enqueue-ready callback registered")
	}
	done := make(chan struct{})
	h.Post(func() {
		unit := f()
		c.mu.Lock()
		c.sent = append(c.sent, unit)
		c.mu.Unlock()
		close(done)
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue builder never ran")
	}
}

func (c *fakeChannel) sentUnits() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.sent))
	copy(out, c.sent)
	return out
}
