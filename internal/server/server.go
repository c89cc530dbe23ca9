package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/ib-77/flow/internal/config"
)

// Server runs the HTTP and gRPC transports over the same handlers.
type Server struct {
	cfg  config.Config
	log  logr.Logger
	http *http.Server
	grpc *grpc.Server
}

// New wires both transports to svc. A nil tp means the global otel tracer
// provider.
func New(cfg config.Config, svc Customers, log logr.Logger, tp trace.TracerProvider) *Server {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	in := NewInstruments(reg, tp)

	return &Server{
		cfg:  cfg,
		log:  log,
		http: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           NewHTTPHandler(svc, in, reg, log.WithName("http")),
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		grpc: NewGRPCServer(svc, in, log.WithName("grpc")),
	}
}

// Run serves both transports until ctx is done or one of them fails, then
// shuts the other down.
func (s *Server) Run(ctx context.Context) error {
	httpLis, err := net.Listen("tcp", s.cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}
	grpcLis, err := net.Listen("tcp", s.cfg.GRPCAddr)
	if err != nil {
		_ = httpLis.Close()
		return fmt.Errorf("listen grpc: %w", err)
	}
	return s.Serve(ctx, httpLis, grpcLis)
}

// Serve is Run over listeners the caller opened.
func (s *Server) Serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http listening", "addr", httpLis.Addr().String())
		if err := s.http.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		s.log.Info("grpc listening", "addr", grpcLis.Addr().String())
		if err := s.grpc.Serve(grpcLis); err != nil {
			return fmt.Errorf("serve grpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.shutdown()
		return nil
	})

	return g.Wait()
}

func (s *Server) shutdown() {
	s.log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.log.Error(err, "http shutdown")
	}

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.grpc.Stop()
	}
}
