// l2capd serves the L2CAP LE connection-oriented channel test facade over
// gRPC, on a unix socket by default. The channel layer behind it is the
// loopback hub; --echo attaches a virtual peer that bounces payloads back.
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"google.golang.org/grpc"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc/loopback"
	"github.com/ExWhyZed9/packages-modules-Bluetooth/facade"
	pb "github.com/ExWhyZed9/packages-modules-Bluetooth/facade/proto"
)

const defaultSocket = "/tmp/l2capd.sock"

var log = logging.MustGetLogger("l2capd")

var stderrFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
)

func main() {
	app := cli.NewApp()
	app.Name = "l2capd"
	app.Usage = "L2CAP LE connection-oriented channel test facade"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "socket",
			Value: defaultSocket,
			Usage: "unix socket to listen on",
		},
		cli.StringFlag{
			Name:  "tcp",
			Usage: "listen on this TCP address instead of the unix socket",
		},
		cli.StringFlag{
			Name:  "addr",
			Value: "aa:bb:cc:dd:ee:01",
			Usage: "local device address on the loopback hub",
		},
		cli.StringFlag{
			Name:  "echo",
			Usage: "attach an echo peer at this address",
		},
		cli.UintFlag{
			Name:  "echo-psm",
			Value: 0x80,
			Usage: "PSM the echo peer listens on",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	setupLogging()

	hub := loopback.NewHub()
	mgr := hub.Node(coc.NewAddr(c.String("addr")))
	if peer := c.String("echo"); peer != "" {
		n := loopback.NewEchoNode(hub, coc.NewAddr(peer), coc.Psm(c.Uint("echo-psm")))
		defer n.Close()
		log.Infof("echo peer at %s, psm 0x%02x", peer, c.Uint("echo-psm"))
	}

	srv := facade.NewServer(mgr)
	defer srv.Stop()

	lis, cleanup, err := listen(c)
	if err != nil {
		return err
	}
	defer cleanup()
	trap(cleanup)

	g := grpc.NewServer()
	pb.RegisterCocFacadeServer(g, facade.NewService(srv))
	log.Infof("serving on %s", lis.Addr())
	return g.Serve(lis)
}

func listen(c *cli.Context) (net.Listener, func(), error) {
	if addr := c.String("tcp"); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, nil, errors.Wrap(err, "can't listen")
		}
		return lis, func() {}, nil
	}
	socket := c.String("socket")
	lis, err := net.ListenUnix("unix", &net.UnixAddr{Name: socket, Net: "unix"})
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't listen")
	}
	return lis, func() { os.Remove(socket) }, nil
}

func setupLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetFormatter(stderrFormat)
	leveled := logging.AddModuleLevel(backend)
	switch os.Getenv("L2CAPD_LOG_LEVEL") {
	case "ERROR":
		leveled.SetLevel(logging.ERROR, "")
	case "WARNING":
		leveled.SetLevel(logging.WARNING, "")
	case "DEBUG":
		leveled.SetLevel(logging.DEBUG, "")
	default:
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

// Cleanup for the interrupted case.
func trap(cleanup func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cleanup()
		os.Exit(1)
	}()
}
