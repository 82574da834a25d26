// l2capctl is a driver CLI for a running l2capd.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/net/context"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/client"
	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
)

func main() {
	app := cli.NewApp()
	app.Name = "l2capctl"
	app.Usage = "drive a running l2capd"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "socket",
			Value: "/tmp/l2capd.sock",
			Usage: "daemon unix socket",
		},
		cli.StringFlag{
			Name:  "tcp",
			Usage: "daemon TCP address, overrides --socket",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "enable",
			Usage:     "register a listening PSM",
			ArgsUsage: "<psm>",
			Action:    withClient(cmdEnable),
		},
		{
			Name:      "disable",
			Usage:     "unregister a listening PSM",
			ArgsUsage: "<psm>",
			Action:    withClient(cmdDisable),
		},
		{
			Name:      "connect",
			Usage:     "originate a channel to a peer",
			ArgsUsage: "<psm> <address>",
			Action:    withClient(cmdConnect),
		},
		{
			Name:      "close",
			Usage:     "close the open channel on a PSM",
			ArgsUsage: "<psm>",
			Action:    withClient(cmdClose),
		},
		{
			Name:      "send",
			Usage:     "send a hex payload over the open channel",
			ArgsUsage: "<psm> <hex>",
			Action:    withClient(cmdSend),
		},
		{
			Name:   "watch",
			Usage:  "stream inbound payloads until interrupted",
			Action: withClient(cmdWatch),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withClient(f func(*cli.Context, *client.Client) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		var cl *client.Client
		var err error
		if addr := c.GlobalString("tcp"); addr != "" {
			cl, err = client.DialTCP(addr)
		} else {
			cl, err = client.Dial(c.GlobalString("socket"))
		}
		if err != nil {
			return err
		}
		defer cl.Close()
		return f(c, cl)
	}
}

func psmArg(c *cli.Context, i int) (coc.Psm, error) {
	psm, err := strconv.ParseUint(c.Args().Get(i), 0, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "bad psm %q", c.Args().Get(i))
	}
	return coc.Psm(psm), nil
}

func cmdEnable(c *cli.Context, cl *client.Client) error {
	psm, err := psmArg(c, 0)
	if err != nil {
		return err
	}
	return cl.EnablePort(context.Background(), psm)
}

func cmdDisable(c *cli.Context, cl *client.Client) error {
	psm, err := psmArg(c, 0)
	if err != nil {
		return err
	}
	return cl.DisablePort(context.Background(), psm)
}

func cmdConnect(c *cli.Context, cl *client.Client) error {
	psm, err := psmArg(c, 0)
	if err != nil {
		return err
	}
	result, err := cl.Connect(context.Background(), psm, coc.NewAddr(c.Args().Get(1)))
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func cmdClose(c *cli.Context, cl *client.Client) error {
	psm, err := psmArg(c, 0)
	if err != nil {
		return err
	}
	return cl.CloseChannel(context.Background(), psm)
}

func cmdSend(c *cli.Context, cl *client.Client) error {
	psm, err := psmArg(c, 0)
	if err != nil {
		return err
	}
	payload, err := hex.DecodeString(c.Args().Get(1))
	if err != nil {
		return errors.Wrap(err, "bad payload")
	}
	return cl.Send(context.Background(), psm, payload)
}

func cmdWatch(c *cli.Context, cl *client.Client) error {
	return cl.StreamInbound(context.Background(), func(psm coc.Psm, payload []byte) {
		fmt.Printf("psm 0x%02x: % X\n", psm, payload)
	})
}
