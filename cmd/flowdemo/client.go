package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/flow/internal/client"
	"github.com/ib-77/flow/internal/customers"
)

var Client = cli.Command{
	Action:    runClient,
	Name:      "client",
	Usage:     "runs the customer scenario against a running server",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "transport",
			Usage: "http, grpc or both",
			Value: "both",
		},
	},
}

// sample collides with the seeded customer, so adding it shows a
// constraint failure.
var sample = customers.Customer{ID: "ALFKI", CompanyName: "ACME", ContactName: "Road", ContactTitle: "Runner"}

func runClient(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var transports []string
	switch t := ctx.String("transport"); t {
	case "http", "grpc":
		transports = []string{t}
	case "both":
		transports = []string{"grpc", "http"}
	default:
		return fmt.Errorf("unknown transport %q", t)
	}

	for _, t := range transports {
		c, closeFn, err := connect(t, cfg.HTTPAddr, cfg.GRPCAddr, cfg.RequestTimeout)
		if err != nil {
			return err
		}
		fmt.Printf("\n< < < < Flow results via %s > > > >\n\n", t)
		client.Scenario{Client: c, Out: os.Stdout}.Run(ctx.Context, sample)
		closeFn()
	}
	return nil
}

func connect(transport, httpAddr, grpcAddr string, timeout time.Duration) (client.Customers, func(), error) {
	if transport == "http" {
		return client.NewHTTP("http://"+httpAddr, &http.Client{Timeout: timeout}), func() {}, nil
	}
	c, conn, err := client.DialGRPC(grpcAddr)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = conn.Close() }, nil
}
