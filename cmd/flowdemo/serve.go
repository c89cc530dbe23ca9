package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/flow/internal/customers"
	"github.com/ib-77/flow/internal/server"
)

var Serve = cli.Command{
	Action: serve,
	Name:   "serve",
	Usage:  "runs the HTTP and gRPC servers until interrupted",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Usage:   "sqlite data source name, overrides the configuration",
			EnvVars: []string{"FLOWDEMO_DB"},
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "print a span for every handled call to stdout",
		},
	},
}

func serve(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet("db") {
		cfg.DBPath = ctx.String("db")
	}
	log := newLogger(ctx)

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var tp trace.TracerProvider
	if ctx.Bool("trace") {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return err
		}
		sdkProvider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		defer func() {
			if err := sdkProvider.Shutdown(context.Background()); err != nil {
				log.Error(err, "trace shutdown")
			}
		}()
		tp = sdkProvider
	}

	store, err := customers.OpenSQLite(runCtx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	validator := customers.FakeValidator{FailEvery: cfg.ValidatorFailEvery}
	svc := customers.NewService(store, validator, log.WithName("customers"))

	return server.New(cfg, svc, log, tp).Run(runCtx)
}
