package boundary

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/ib-77/flow/pkg/flow"
)

type options struct {
	log      logr.Logger
	classify func(err error) *flow.Failure
}

// Option configures a boundary adapter.
type Option func(*options)

// WithLogger logs every error converted at the boundary.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithClassifier replaces Classify as the error to failure conversion. When
// classify returns nil for an error, Classify decides instead.
func WithClassifier(classify func(err error) *flow.Failure) Option {
	return func(o *options) {
		if classify != nil {
			o.classify = classify
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: logr.Discard(), classify: Classify}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Guard runs an outbound call and turns any transport error or panic into a
// failed Result. It is the compile-time replacement for intercepting
// responses and building failed results by reflection.
func Guard[T any](ctx context.Context, call func(ctx context.Context) (flow.Result[T], error), opts ...Option) flow.Result[T] {
	o := newOptions(opts)

	res, err := flow.Capture(func() (flow.Result[T], error) {
		return call(ctx)
	})
	if err == nil {
		return res
	}

	f := o.classify(err)
	if f == nil {
		f = Classify(err)
	}
	o.log.Error(err, "call failed at the boundary", "kind", f.Kind().String(), "canRetry", f.CanRetry())
	return flow.Failed[T](f)
}
