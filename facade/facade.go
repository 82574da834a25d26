// Package facade exposes an L2CAP LE connection-oriented channel layer to
// an external test driver. It registers listening PSMs, originates and
// accepts connections, exchanges raw payloads over open channels, and
// streams inbound payloads back to the driver, mapping the layer's
// asynchronous completion callbacks onto bounded synchronous control calls.
package facade

import (
	"sync"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
)

// Server is the facade: the channel registry plus the control operations
// the driver invokes. Independent PSMs proceed concurrently; the registry
// map is guarded only for insert/remove/lookup.
type Server struct {
	mgr     coc.Manager
	handler *coc.Handler
	relay   *Relay

	mu      sync.Mutex
	helpers map[coc.Psm]*helper
}

// NewServer creates a facade over mgr. The facade owns its Handler; every
// callback the facade registers with the channel layer runs on it.
func NewServer(mgr coc.Manager) *Server {
	return &Server{
		mgr:     mgr,
		handler: coc.NewHandler("facade"),
		relay:   NewRelay(),
		helpers: make(map[coc.Psm]*helper),
	}
}

// EnablePort creates a helper for psm and starts its listener
// registration. Registration completion arrives asynchronously; EnablePort
// itself only guarantees the registry entry.
func (s *Server) EnablePort(psm coc.Psm) error {
	h := newHelper(psm, s.mgr, s.handler, s.relay)

	s.mu.Lock()
	if _, dup := s.helpers[psm]; dup {
		s.mu.Unlock()
		return ErrAlreadyRegistered
	}
	s.helpers[psm] = h
	s.mu.Unlock()

	h.register()
	return nil
}

// DisablePort unregisters psm's listener and removes the registry entry.
// An open channel on psm stays open; closing it is the driver's business.
func (s *Server) DisablePort(psm coc.Psm) error {
	s.mu.Lock()
	h, ok := s.helpers[psm]
	delete(s.helpers, psm)
	s.mu.Unlock()
	if !ok {
		return ErrNotRegistered
	}
	h.unregister()
	return nil
}

// Connect originates a channel from psm's helper to peer and waits,
// bounded, for the outcome.
func (s *Server) Connect(psm coc.Psm, peer coc.Addr) error {
	h, err := s.lookup(psm)
	if err != nil {
		return err
	}
	return h.Connect(peer)
}

// Close requests closure of psm's open channel.
func (s *Server) Close(psm coc.Psm) error {
	h, err := s.lookup(psm)
	if err != nil {
		return err
	}
	return h.Close()
}

// Send transmits payload over psm's open channel using the single-slot
// send protocol.
func (s *Server) Send(psm coc.Psm, payload []byte) error {
	h, err := s.lookup(psm)
	if err != nil {
		return err
	}
	return h.Send(payload)
}

// Relay returns the inbound event relay.
func (s *Server) Relay() *Relay {
	return s.relay
}

// LastFailure returns the most recent connect refusal recorded for psm.
func (s *Server) LastFailure(psm coc.Psm) (coc.ConnectionResult, error) {
	h, err := s.lookup(psm)
	if err != nil {
		return coc.ResultSuccess, err
	}
	return h.lastFailure(), nil
}

// Stop tears the facade down: every listener and receive path is released
// so no callback fires afterwards, the relay wakes its consumer, and the
// handler drains. All state ends empty.
func (s *Server) Stop() {
	s.mu.Lock()
	helpers := s.helpers
	s.helpers = make(map[coc.Psm]*helper)
	s.mu.Unlock()

	for _, h := range helpers {
		h.unregister()
	}
	s.relay.Close()
	s.handler.Close()
}

func (s *Server) lookup(psm coc.Psm) (*helper, error) {
	s.mu.Lock()
	h, ok := s.helpers[psm]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotRegistered
	}
	if h == nil {
		// Single-helper-per-PSM bookkeeping is broken; nothing sane to
		// return.
		panic("facade: nil helper in registry")
	}
	return h, nil
}
