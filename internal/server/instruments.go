package server

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/flow/pkg/flow"
)

const instrumentationName = "github.com/ib-77/flow/internal/server"

// Instruments records every handler result as a counter sample and a span.
type Instruments struct {
	results *prometheus.CounterVec
	tracer  trace.Tracer
}

// NewInstruments registers the result counter with reg and takes its tracer
// from tp.
func NewInstruments(reg prometheus.Registerer, tp trace.TracerProvider) *Instruments {
	in := &Instruments{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flow_results_total",
			Help: "Results returned by the customer handlers.",
		}, []string{"operation", "outcome", "kind"}),
		tracer: tp.Tracer(instrumentationName),
	}
	reg.MustRegister(in.results)
	return in
}

// Observe runs call inside a span and counts its Result. A nil Instruments
// only runs call.
func Observe[T any](ctx context.Context, in *Instruments, operation string,
	call func(ctx context.Context) flow.Result[T]) flow.Result[T] {

	if in == nil {
		return call(ctx)
	}

	ctx, span := in.tracer.Start(ctx, operation, trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	r := call(ctx)
	if r.IsSuccess() {
		in.results.WithLabelValues(operation, "success", "").Inc()
		span.SetStatus(otelcodes.Ok, "")
		return r
	}

	kind := flow.FailureKind(r)
	in.results.WithLabelValues(operation, "failure", kind.String()).Inc()
	span.SetAttributes(attribute.String("flow.failure.kind", kind.String()), attribute.Int("flow.failure.discriminator", int(kind)))
	span.SetStatus(otelcodes.Error, r.Err().Error())
	return r
}
