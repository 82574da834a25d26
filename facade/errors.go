package facade

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
)

// Control call failures. All of them are reported to the driver as a
// status; none are fatal to the process.
var (
	ErrAlreadyRegistered = errors.New("PSM already registered")
	ErrNotRegistered     = errors.New("PSM not registered")
	ErrNotOpen           = errors.New("channel not open")
	ErrConnectTimeout    = errors.New("channel open timed out")
	ErrSendBusy          = errors.New("previous packet not sent yet")
	ErrSendTimeout       = errors.New("send timed out")
	ErrStreamBusy        = errors.New("inbound stream already attached")
	ErrStopped           = errors.New("facade stopped")
)

// ConnectFailedError reports the refusal reason recorded from a failed
// outbound connect attempt.
type ConnectFailedError struct {
	Reason coc.ConnectionResult
}

func (e *ConnectFailedError) Error() string {
	return fmt.Sprintf("connect failed: %s", e.Reason)
}
