package facade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
	pb "github.com/ExWhyZed9/packages-modules-Bluetooth/facade/proto"
)

func newTestService(t *testing.T) (*Service, *Server, *fakeManager) {
	t.Helper()
	s, mgr := newTestServer(t)
	return NewService(s), s, mgr
}

func TestServiceSetPort(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetPort(ctx, &pb.SetPortRequest{Psm: uint32(testPsm), Enable: true})
	require.NoError(t, err)

	_, err = svc.SetPort(ctx, &pb.SetPortRequest{Psm: uint32(testPsm), Enable: true})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = svc.SetPort(ctx, &pb.SetPortRequest{Psm: uint32(testPsm), Enable: false})
	require.NoError(t, err)

	_, err = svc.SetPort(ctx, &pb.SetPortRequest{Psm: uint32(testPsm), Enable: false})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestServiceSetPortInvalidPsm(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SetPort(context.Background(), &pb.SetPortRequest{Psm: 0x1234, Enable: true})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServiceConnectNotRegistered(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Connect(context.Background(), &pb.ConnectRequest{Psm: uint32(testPsm), Remote: testPeer.String()})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestServiceConnectReportsRefusalInBody(t *testing.T) {
	svc, s, mgr := newTestService(t)
	require.NoError(t, s.EnablePort(testPsm))

	type rsp struct {
		r   *pb.ConnectResponse
		err error
	}
	rspc := make(chan rsp, 1)
	go func() {
		r, err := svc.Connect(context.Background(), &pb.ConnectRequest{Psm: uint32(testPsm), Remote: testPeer.String()})
		rspc <- rsp{r, err}
	}()

	req := mgr.awaitConnect(t)
	req.handler.Post(func() { req.onFailed(coc.ResultNoResources) })

	select {
	case got := <-rspc:
		require.NoError(t, got.err)
		assert.Equal(t, pb.ConnectionResult_RESULT_NO_RESOURCES, got.r.Result)
	case <-time.After(time.Second):
		t.Fatal("Connect did not return")
	}
}

func TestServiceConnectTimeoutInBody(t *testing.T) {
	svc, s, mgr := newTestService(t)
	require.NoError(t, s.EnablePort(testPsm))
	shorten(t, s, testPsm)

	rspc := make(chan *pb.ConnectResponse, 1)
	go func() {
		r, err := svc.Connect(context.Background(), &pb.ConnectRequest{Psm: uint32(testPsm), Remote: testPeer.String()})
		require.NoError(t, err)
		rspc <- r
	}()
	mgr.awaitConnect(t)

	select {
	case r := <-rspc:
		assert.Equal(t, pb.ConnectionResult_RESULT_TIMEOUT, r.Result)
	case <-time.After(time.Second):
		t.Fatal("Connect did not return")
	}
}

func TestServiceSendStatusCodes(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, &pb.SendRequest{Psm: uint32(testPsm), Payload: []byte{0x01}})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	require.NoError(t, s.EnablePort(testPsm))
	shorten(t, s, testPsm)

	_, err = svc.Send(ctx, &pb.SendRequest{Psm: uint32(testPsm), Payload: []byte{0x01}})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "not open maps to FailedPrecondition")
}

func TestServiceStreamInboundAfterStop(t *testing.T) {
	svc, s, _ := newTestService(t)
	s.Stop()

	stream := &fakeInboundStream{ctx: context.Background(), sent: make(chan *pb.InboundPacket, 1)}
	err := svc.StreamInbound(&pb.StreamInboundRequest{}, stream)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

// fakeInboundStream satisfies pb.CocFacade_StreamInboundServer for driving
// StreamInbound without a network.
type fakeInboundStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent chan *pb.InboundPacket
}

func (s *fakeInboundStream) Context() context.Context { return s.ctx }

func (s *fakeInboundStream) Send(p *pb.InboundPacket) error {
	s.sent <- p
	return nil
}

func TestServiceStreamInbound(t *testing.T) {
	svc, s, mgr := newTestService(t)
	require.NoError(t, s.EnablePort(testPsm))
	ch := open(t, s, mgr, testPsm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := &fakeInboundStream{ctx: ctx, sent: make(chan *pb.InboundPacket, 8)}

	done := make(chan error, 1)
	go func() { done <- svc.StreamInbound(&pb.StreamInboundRequest{}, stream) }()

	// Give the consumer a moment to attach, then verify a second one is
	// refused while the first is up.
	require.Eventually(t, func() bool {
		err := s.Relay().Attach()
		if err == nil {
			// Raced ahead of the stream; give the slot back.
			s.Relay().Detach()
			return false
		}
		return err == ErrStreamBusy
	}, time.Second, 10*time.Millisecond)

	ch.push(t, []byte{0xaa, 0xbb})

	select {
	case p := <-stream.sent:
		assert.Equal(t, uint32(testPsm), p.Psm)
		assert.Equal(t, []byte{0xaa, 0xbb}, p.Payload)
	case <-time.After(time.Second):
		t.Fatal("no packet streamed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "driver detach ends the stream cleanly")
	case <-time.After(time.Second):
		t.Fatal("StreamInbound did not return on detach")
	}
}
