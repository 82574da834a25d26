// Package coc defines the interfaces of an L2CAP LE connection-oriented
// channel layer, as consumed by the test facade. The layer itself (link
// establishment, credit based flow control, segmentation) lives behind
// these interfaces; the facade only drives and observes it.
package coc

import "strings"

// A Psm identifies a logical service to which inbound connection requests
// are routed. Dynamic LE PSMs occupy [0x0080, 0x00FF]; fixed SIG assigned
// PSMs occupy [0x0001, 0x007F]. [Vol 3, Part A, 4.22]
type Psm uint16

// Valid reports whether the PSM falls in the LE PSM range.
func (p Psm) Valid() bool { return p > 0x0000 && p <= 0x00FF }

// Addr represents a peer device address.
type Addr interface {
	String() string
}

// NewAddr creates an Addr from its string form.
func NewAddr(s string) Addr {
	return addr(strings.ToLower(s))
}

type addr string

func (a addr) String() string { return string(a) }

// RegistrationResult is the outcome of a listener registration.
type RegistrationResult int

// Registration outcomes.
const (
	RegistrationSuccess RegistrationResult = iota
	RegistrationFailedDuplicate
	RegistrationFailedNoResources
)

func (r RegistrationResult) String() string {
	switch r {
	case RegistrationSuccess:
		return "success"
	case RegistrationFailedDuplicate:
		return "duplicate PSM"
	case RegistrationFailedNoResources:
		return "no resources"
	default:
		return "unknown registration result"
	}
}

// ConnectionResult mirrors the result field of an LE Credit Based
// Connection Response [Vol 3, Part A, 4.23]. ResultTimeout is local only;
// it is never carried on the wire.
type ConnectionResult uint16

// Connection results.
const (
	ResultSuccess                    ConnectionResult = 0x0000
	ResultSpsmNotSupported           ConnectionResult = 0x0002
	ResultNoResources                ConnectionResult = 0x0004
	ResultInsufficientAuthentication ConnectionResult = 0x0005
	ResultInsufficientAuthorization  ConnectionResult = 0x0006
	ResultInsufficientEncryptKeySize ConnectionResult = 0x0007
	ResultInsufficientEncryption     ConnectionResult = 0x0008
	ResultInvalidSourceCID           ConnectionResult = 0x0009
	ResultSourceCIDAlreadyAllocated  ConnectionResult = 0x000A
	ResultUnacceptableParameters     ConnectionResult = 0x000B
	ResultTimeout                    ConnectionResult = 0x0100
)

var resultName = map[ConnectionResult]string{
	ResultSuccess:                    "success",
	ResultSpsmNotSupported:           "SPSM not supported",
	ResultNoResources:                "no resources available",
	ResultInsufficientAuthentication: "insufficient authentication",
	ResultInsufficientAuthorization:  "insufficient authorization",
	ResultInsufficientEncryptKeySize: "insufficient encryption key size",
	ResultInsufficientEncryption:     "insufficient encryption",
	ResultInvalidSourceCID:           "invalid source CID",
	ResultSourceCIDAlreadyAllocated:  "source CID already allocated",
	ResultUnacceptableParameters:     "unacceptable parameters",
	ResultTimeout:                    "timeout",
}

func (r ConnectionResult) String() string {
	if s, ok := resultName[r]; ok {
		return s
	}
	return "unknown connection result"
}

// Manager is the channel layer entry point. Both calls are asynchronous;
// outcomes are reported through the supplied callbacks, invoked on the
// given Handler.
type Manager interface {
	// RegisterListener registers a listening endpoint for psm. onRegistered
	// reports the registration outcome along with the Listener token used to
	// unregister. onOpen fires for every inbound channel accepted on psm.
	RegisterListener(psm Psm, onRegistered func(RegistrationResult, Listener), onOpen func(Channel), h *Handler)

	// Connect originates an outbound channel to peer on psm. Exactly one of
	// onOpen or onFailed eventually fires, unless the attempt is lost by the
	// lower layer. Callers must bound their own waits.
	Connect(peer Addr, psm Psm, onOpen func(Channel), onFailed func(ConnectionResult), h *Handler)
}

// Listener is the registration token returned for a listening PSM.
type Listener interface {
	Psm() Psm

	// Unregister removes the listener. Channels already open stay open.
	Unregister()
}

// Channel is one established connection-oriented channel.
type Channel interface {
	// Close requests closure. Confirmation arrives via the close callback.
	Close() error

	// RegisterCloseCallback arranges for f to run on h once the channel is
	// closed, locally or by the peer.
	RegisterCloseCallback(h *Handler, f func(reason error))

	// Endpoint returns the channel's data queue endpoint.
	Endpoint() Endpoint

	RemoteAddr() Addr
}

// Endpoint is the upper end of a channel's receive/send queue pair.
// Readiness callbacks are edge triggered: one dequeue callback corresponds
// to at most one available unit, and an enqueue-ready callback fires once
// per registration when the outbound queue can accept a unit.
type Endpoint interface {
	// RegisterDequeue arranges for f to run on h whenever an inbound unit
	// becomes available.
	RegisterDequeue(h *Handler, f func())

	UnregisterDequeue()

	// TryDequeueOne removes and returns one buffered inbound unit.
	TryDequeueOne() ([]byte, bool)

	// RegisterEnqueueReady arranges for f to run on h when the outbound
	// queue has room. f returns the unit to transmit; it is expected to
	// unregister itself before returning.
	RegisterEnqueueReady(h *Handler, f func() []byte)

	UnregisterEnqueueReady()
}
