package facade

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
	pb "github.com/ExWhyZed9/packages-modules-Bluetooth/facade/proto"
)

// Service adapts a Server to the CocFacade gRPC surface. Each rpc
// validates, delegates to the matching control operation, and translates
// the error taxonomy into status codes: registry/state failures map to
// FailedPrecondition, expired bounded waits to DeadlineExceeded. Connect
// refusal reasons travel in the response body, not the status.
type Service struct {
	srv *Server
}

// NewService ...
func NewService(srv *Server) *Service {
	return &Service{srv: srv}
}

// SetPort enables or disables a listening PSM.
func (f *Service) SetPort(ctx context.Context, req *pb.SetPortRequest) (*pb.SetPortResponse, error) {
	psm := coc.Psm(req.Psm)
	if !psm.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "invalid psm %d", req.Psm)
	}
	var err error
	if req.Enable {
		err = f.srv.EnablePort(psm)
	} else {
		err = f.srv.DisablePort(psm)
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SetPortResponse{}, nil
}

// Connect originates a channel and reports the bounded-wait outcome. A
// refused attempt reports the recorded refusal reason in the body.
func (f *Service) Connect(ctx context.Context, req *pb.ConnectRequest) (*pb.ConnectResponse, error) {
	psm := coc.Psm(req.Psm)
	err := f.srv.Connect(psm, coc.NewAddr(req.Remote))
	switch err.(type) {
	case nil:
		return &pb.ConnectResponse{Result: pb.ConnectionResult_RESULT_SUCCESS}, nil
	case *ConnectFailedError:
		reason, lerr := f.srv.LastFailure(psm)
		if lerr != nil {
			return nil, toStatus(lerr)
		}
		return &pb.ConnectResponse{Result: pb.ConnectionResult(reason)}, nil
	default:
		if err == ErrConnectTimeout {
			return &pb.ConnectResponse{Result: pb.ConnectionResult_RESULT_TIMEOUT}, nil
		}
		return nil, toStatus(err)
	}
}

// Close requests closure of the open channel on a PSM.
func (f *Service) Close(ctx context.Context, req *pb.CloseRequest) (*pb.CloseResponse, error) {
	if err := f.srv.Close(coc.Psm(req.Psm)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.CloseResponse{}, nil
}

// Send transmits one payload over the open channel on a PSM.
func (f *Service) Send(ctx context.Context, req *pb.SendRequest) (*pb.SendResponse, error) {
	if err := f.srv.Send(coc.Psm(req.Psm), req.Payload); err != nil {
		return nil, toStatus(err)
	}
	return &pb.SendResponse{}, nil
}

// StreamInbound drains the relay into the driver's stream. One consumer at
// a time; detaching (driver disconnect) releases the relay for the next.
func (f *Service) StreamInbound(_ *pb.StreamInboundRequest, stream pb.CocFacade_StreamInboundServer) error {
	if err := f.srv.relay.Attach(); err != nil {
		return toStatus(err)
	}
	defer f.srv.relay.Detach()

	ctx := stream.Context()
	for {
		e, err := f.srv.relay.Next(ctx)
		if err != nil {
			// Driver went away or the facade stopped; either way the
			// stream just ends.
			return nil
		}
		if err := stream.Send(&pb.InboundPacket{Psm: uint32(e.Psm), Payload: e.Payload}); err != nil {
			return err
		}
	}
}

func toStatus(err error) error {
	switch err {
	case ErrAlreadyRegistered, ErrNotRegistered, ErrNotOpen, ErrSendBusy, ErrStreamBusy:
		return status.Error(codes.FailedPrecondition, err.Error())
	case ErrConnectTimeout, ErrSendTimeout:
		return status.Error(codes.DeadlineExceeded, err.Error())
	case ErrStopped:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
