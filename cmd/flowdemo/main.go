package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/flow/internal/config"
	"github.com/ib-77/flow/internal/customers"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "path of a YAML configuration file",
		EnvVars: []string{"FLOWDEMO_CONFIG"},
	}
	httpAddrFlag = &cli.StringFlag{
		Name:    "http-addr",
		Usage:   "address of the JSON API",
		EnvVars: []string{"FLOWDEMO_HTTP_ADDR"},
	}
	grpcAddrFlag = &cli.StringFlag{
		Name:    "grpc-addr",
		Usage:   "address of the gRPC service",
		EnvVars: []string{"FLOWDEMO_GRPC_ADDR"},
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "v",
		Usage: "log verbosity, 1 logs every request",
	}
)

func main() {
	app := &cli.App{
		Name:  "flowdemo",
		Usage: "customer service demo returning flow Results over HTTP and gRPC",
		Flags: []cli.Flag{configFlag, httpAddrFlag, grpcAddrFlag, verbosityFlag},
		Before: func(*cli.Context) error {
			return customers.RegisterFailures()
		},
		Commands: []*cli.Command{
			&Serve,
			&Client,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies the address flags on
// top of it.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.String(configFlag.Name))
	if err != nil {
		return config.Config{}, err
	}
	if ctx.IsSet(httpAddrFlag.Name) {
		cfg.HTTPAddr = ctx.String(httpAddrFlag.Name)
	}
	if ctx.IsSet(grpcAddrFlag.Name) {
		cfg.GRPCAddr = ctx.String(grpcAddrFlag.Name)
	}
	return cfg, cfg.Validate()
}

func newLogger(ctx *cli.Context) logr.Logger {
	stdr.SetVerbosity(ctx.Int(verbosityFlag.Name))
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("flowdemo")
}
