// Package loopback implements coc.Manager without a radio: a Hub connects
// the managers of local virtual devices directly, delivering units between
// paired channel endpoints. It backs the daemon's demo mode and the
// end-to-end tests.
package loopback

import (
	"sync"

	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
)

var log = logging.MustGetLogger("loopback")

// Hub wires local virtual devices together by address.
type Hub struct {
	mu    sync.Mutex
	nodes map[string]*Manager
}

// NewHub ...
func NewHub() *Hub {
	return &Hub{nodes: make(map[string]*Manager)}
}

// Node returns the manager for addr, creating it on first use.
func (hub *Hub) Node(addr coc.Addr) *Manager {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	m, ok := hub.nodes[addr.String()]
	if !ok {
		m = &Manager{
			hub:       hub,
			addr:      addr,
			listeners: make(map[coc.Psm]*listener),
		}
		hub.nodes[addr.String()] = m
	}
	return m
}

func (hub *Hub) find(addr coc.Addr) *Manager {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return hub.nodes[addr.String()]
}

// Manager is one virtual device's channel layer.
type Manager struct {
	hub  *Hub
	addr coc.Addr

	mu        sync.Mutex
	listeners map[coc.Psm]*listener
}

// Addr returns the device address this manager answers on.
func (m *Manager) Addr() coc.Addr { return m.addr }

// RegisterListener implements coc.Manager.
func (m *Manager) RegisterListener(psm coc.Psm, onRegistered func(coc.RegistrationResult, coc.Listener), onOpen func(coc.Channel), h *coc.Handler) {
	m.mu.Lock()
	if _, dup := m.listeners[psm]; dup {
		m.mu.Unlock()
		h.Post(func() { onRegistered(coc.RegistrationFailedDuplicate, nil) })
		return
	}
	l := &listener{mgr: m, psm: psm, onOpen: onOpen, handler: h}
	m.listeners[psm] = l
	m.mu.Unlock()
	h.Post(func() { onRegistered(coc.RegistrationSuccess, l) })
}

// Connect implements coc.Manager. The attempt resolves on the hub's
// goroutine; callbacks land on h.
func (m *Manager) Connect(peer coc.Addr, psm coc.Psm, onOpen func(coc.Channel), onFailed func(coc.ConnectionResult), h *coc.Handler) {
	go func() {
		remote := m.hub.find(peer)
		if remote == nil {
			log.Warningf("connect: no route to %s", peer)
			h.Post(func() { onFailed(coc.ResultNoResources) })
			return
		}
		remote.mu.Lock()
		l := remote.listeners[psm]
		remote.mu.Unlock()
		if l == nil {
			h.Post(func() { onFailed(coc.ResultSpsmNotSupported) })
			return
		}
		local, far := newChannelPair(m.addr, remote.addr, psm)
		h.Post(func() { onOpen(local) })
		l.handler.Post(func() { l.onOpen(far) })
	}()
}

func (m *Manager) unregister(psm coc.Psm) {
	m.mu.Lock()
	delete(m.listeners, psm)
	m.mu.Unlock()
}

type listener struct {
	mgr     *Manager
	psm     coc.Psm
	onOpen  func(coc.Channel)
	handler *coc.Handler
}

func (l *listener) Psm() coc.Psm { return l.psm }

func (l *listener) Unregister() { l.mgr.unregister(l.psm) }

var errClosed = errors.New("loopback: channel closed")

// newChannelPair builds two channels whose endpoints feed each other.
func newChannelPair(a, b coc.Addr, psm coc.Psm) (*Channel, *Channel) {
	ca := &Channel{local: a, remote: b, psm: psm}
	cb := &Channel{local: b, remote: a, psm: psm}
	ca.peer, cb.peer = cb, ca
	return ca, cb
}

// Channel is one end of a loopback channel pair.
type Channel struct {
	local  coc.Addr
	remote coc.Addr
	psm    coc.Psm
	peer   *Channel

	mu        sync.Mutex
	closed    bool
	inbound   [][]byte
	closeH    *coc.Handler
	onClose   func(error)
	dequeueH  *coc.Handler
	onDequeue func()
	enqueueH  *coc.Handler
	onEnqueue func() []byte
}

// RemoteAddr implements coc.Channel.
func (c *Channel) RemoteAddr() coc.Addr { return c.remote }

// Close implements coc.Channel. Both ends observe closure through their
// close callbacks.
func (c *Channel) Close() error {
	c.closeLocal(errClosed)
	c.peer.closeLocal(errClosed)
	return nil
}

func (c *Channel) closeLocal(reason error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.inbound = nil
	h, f := c.closeH, c.onClose
	c.mu.Unlock()
	if h != nil && f != nil {
		h.Post(func() { f(reason) })
	}
}

// RegisterCloseCallback implements coc.Channel.
func (c *Channel) RegisterCloseCallback(h *coc.Handler, f func(error)) {
	c.mu.Lock()
	closed := c.closed
	c.closeH, c.onClose = h, f
	c.mu.Unlock()
	if closed {
		h.Post(func() { f(errClosed) })
	}
}

// Endpoint implements coc.Channel. The Channel is its own endpoint; a real
// layer would hand out the upper end of its queue pair here.
func (c *Channel) Endpoint() coc.Endpoint { return c }

// RegisterDequeue implements coc.Endpoint. Units already buffered fire one
// callback each.
func (c *Channel) RegisterDequeue(h *coc.Handler, f func()) {
	c.mu.Lock()
	c.dequeueH, c.onDequeue = h, f
	backlog := len(c.inbound)
	c.mu.Unlock()
	for i := 0; i < backlog; i++ {
		h.Post(f)
	}
}

// UnregisterDequeue implements coc.Endpoint.
func (c *Channel) UnregisterDequeue() {
	c.mu.Lock()
	c.dequeueH, c.onDequeue = nil, nil
	c.mu.Unlock()
}

// TryDequeueOne implements coc.Endpoint.
func (c *Channel) TryDequeueOne() ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.inbound) == 0 {
		return nil, false
	}
	unit := c.inbound[0]
	c.inbound = c.inbound[1:]
	return unit, true
}

// RegisterEnqueueReady implements coc.Endpoint. The loopback queue always
// has room, so the builder callback is scheduled immediately; the unit it
// returns is delivered to the peer.
func (c *Channel) RegisterEnqueueReady(h *coc.Handler, f func() []byte) {
	c.mu.Lock()
	c.enqueueH, c.onEnqueue = h, f
	c.mu.Unlock()
	h.Post(func() {
		c.mu.Lock()
		g := c.onEnqueue
		closed := c.closed
		c.mu.Unlock()
		if g == nil || closed {
			return
		}
		unit := g()
		if unit != nil {
			c.peer.push(unit)
		}
	})
}

// UnregisterEnqueueReady implements coc.Endpoint.
func (c *Channel) UnregisterEnqueueReady() {
	c.mu.Lock()
	c.enqueueH, c.onEnqueue = nil, nil
	c.mu.Unlock()
}

// push appends one inbound unit and pokes the dequeue callback once,
// keeping the edge-triggered one-callback-one-unit pairing.
func (c *Channel) push(unit []byte) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.inbound = append(c.inbound, unit)
	h, f := c.dequeueH, c.onDequeue
	c.mu.Unlock()
	if h != nil && f != nil {
		h.Post(f)
	}
}
