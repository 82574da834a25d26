package loopback

import "github.com/ExWhyZed9/packages-modules-Bluetooth/coc"

// EchoNode is a virtual peer that bounces every inbound unit straight back
// on the channel it arrived on. The daemon's demo mode runs one so a
// driver has something to talk to.
type EchoNode struct {
	mgr     *Manager
	handler *coc.Handler
}

// NewEchoNode attaches an echoing listener for psm at addr on the hub.
func NewEchoNode(hub *Hub, addr coc.Addr, psm coc.Psm) *EchoNode {
	n := &EchoNode{
		mgr:     hub.Node(addr),
		handler: coc.NewHandler("echo"),
	}
	n.mgr.RegisterListener(psm, n.onRegistered, n.onOpen, n.handler)
	return n
}

func (n *EchoNode) onRegistered(result coc.RegistrationResult, l coc.Listener) {
	if result != coc.RegistrationSuccess {
		log.Errorf("echo: listener registration failed: %s", result)
	}
}

func (n *EchoNode) onOpen(ch coc.Channel) {
	ep := ch.Endpoint()

	// pending and armed are only touched on n.handler, so no lock. The
	// enqueue registration is single-slot: arming it again while a send is
	// outstanding would clobber the pending builder, so units queue here
	// and the builder re-arms itself while any remain.
	var pending [][]byte
	armed := false

	var send func() []byte
	send = func() []byte {
		ep.UnregisterEnqueueReady()
		unit := pending[0]
		pending = pending[1:]
		if len(pending) > 0 {
			ep.RegisterEnqueueReady(n.handler, send)
		} else {
			armed = false
		}
		return unit
	}

	ep.RegisterDequeue(n.handler, func() {
		unit, ok := ep.TryDequeueOne()
		if !ok {
			return
		}
		pending = append(pending, unit)
		if !armed {
			armed = true
			ep.RegisterEnqueueReady(n.handler, send)
		}
	})
}

// Close stops the echo node's handler.
func (n *EchoNode) Close() {
	n.handler.Close()
}
