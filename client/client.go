// Package client wraps the CocFacade gRPC surface for Go test drivers.
package client

import (
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"google.golang.org/grpc"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
	pb "github.com/ExWhyZed9/packages-modules-Bluetooth/facade/proto"
)

// Client drives a remote facade.
type Client struct {
	conn *grpc.ClientConn
	coc  pb.CocFacadeClient
}

// Dial connects to a daemon over its unix socket.
func Dial(socket string) (*Client, error) {
	dialer := func(a string, t time.Duration) (net.Conn, error) {
		return net.Dial("unix", a)
	}
	conn, err := grpc.Dial(socket, grpc.WithInsecure(), grpc.WithDialer(dialer))
	if err != nil {
		return nil, errors.Wrap(err, "can't connect")
	}
	return &Client{conn: conn, coc: pb.NewCocFacadeClient(conn)}, nil
}

// DialTCP connects to a daemon over TCP.
func DialTCP(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, errors.Wrap(err, "can't connect")
	}
	return &Client{conn: conn, coc: pb.NewCocFacadeClient(conn)}, nil
}

// Close tears down the control connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// EnablePort registers a listening PSM on the remote facade.
func (c *Client) EnablePort(ctx context.Context, psm coc.Psm) error {
	_, err := c.coc.SetPort(ctx, &pb.SetPortRequest{Psm: uint32(psm), Enable: true})
	return err
}

// DisablePort unregisters a listening PSM.
func (c *Client) DisablePort(ctx context.Context, psm coc.Psm) error {
	_, err := c.coc.SetPort(ctx, &pb.SetPortRequest{Psm: uint32(psm), Enable: false})
	return err
}

// Connect originates a channel to remote on psm and returns the reported
// result.
func (c *Client) Connect(ctx context.Context, psm coc.Psm, remote coc.Addr) (pb.ConnectionResult, error) {
	rsp, err := c.coc.Connect(ctx, &pb.ConnectRequest{Psm: uint32(psm), Remote: remote.String()})
	if err != nil {
		return pb.ConnectionResult_RESULT_SUCCESS, err
	}
	return rsp.Result, nil
}

// CloseChannel requests closure of the open channel on psm.
func (c *Client) CloseChannel(ctx context.Context, psm coc.Psm) error {
	_, err := c.coc.Close(ctx, &pb.CloseRequest{Psm: uint32(psm)})
	return err
}

// Send transmits one payload over the open channel on psm.
func (c *Client) Send(ctx context.Context, psm coc.Psm, payload []byte) error {
	_, err := c.coc.Send(ctx, &pb.SendRequest{Psm: uint32(psm), Payload: payload})
	return err
}

// StreamInbound forwards inbound payloads to handle until the stream ends
// or ctx is cancelled.
func (c *Client) StreamInbound(ctx context.Context, handle func(psm coc.Psm, payload []byte)) error {
	stream, err := c.coc.StreamInbound(ctx, &pb.StreamInboundRequest{})
	if err != nil {
		return errors.Wrap(err, "can't attach inbound stream")
	}
	for {
		pkt, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		handle(coc.Psm(pkt.Psm), pkt.Payload)
	}
}
