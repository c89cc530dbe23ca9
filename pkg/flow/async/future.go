package async

import (
	"context"

	"github.com/ib-77/flow/pkg/flow"
)

// Future is a Result that is being computed on another goroutine.
type Future[T any] struct {
	done      chan struct{}
	result    flow.Result[T]
	panicked  bool
	recovered any
}

// Go runs produce on its own goroutine. A panic in produce is kept and
// raised again by Await, at the site that consumes the Result.
func Go[T any](ctx context.Context, produce func(ctx context.Context) flow.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if rec := recover(); rec != nil {
				f.panicked = true
				f.recovered = rec
			}
		}()
		f.result = produce(ctx)
	}()

	return f
}

// Resolved returns a Future that already holds r.
func Resolved[T any](r flow.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), result: r}
	close(f.done)
	return f
}

// Await blocks until the Result is ready or ctx is done. A cancelled ctx
// yields a TaskCancellationFailure wrapping ctx.Err().
func (f *Future[T]) Await(ctx context.Context) flow.Result[T] {
	select {
	case <-f.done:
		return f.get()
	default:
	}

	select {
	case <-f.done:
		return f.get()
	case <-ctx.Done():
		return flow.Failed[T](flow.TaskCancellationFailure("operation was cancelled",
			flow.WithException(ctx.Err())))
	}
}

// Done is closed once the Result is ready.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether Await would return without blocking.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[T]) get() flow.Result[T] {
	if f.panicked {
		panic(f.recovered)
	}
	return f.result
}
