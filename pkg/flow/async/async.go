package async

import (
	"context"

	"github.com/ib-77/flow/pkg/flow"
)

// Then awaits produce and lifts its value through toResult.
func Then[T, TOut any](ctx context.Context,
	produce func(ctx context.Context) T,
	toResult func(v T) flow.Result[TOut]) *Future[TOut] {

	return Go(ctx, func(ctx context.Context) flow.Result[TOut] {
		return toResult(produce(ctx))
	})
}

// Bind starts onSuccess for a successful input. A failure resolves
// immediately without starting anything.
func Bind[In, Out any](ctx context.Context, input flow.Result[In],
	onSuccess func(ctx context.Context, r In) flow.Result[Out]) *Future[Out] {

	v, ok := input.Value()
	if !ok {
		return Resolved(flow.Failed[Out](failureOf(input)))
	}
	return Go(ctx, func(ctx context.Context) flow.Result[Out] {
		return onSuccess(ctx, v)
	})
}

// OnSuccess awaits input and chains onSuccess on its success value.
func OnSuccess[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) flow.Result[Out]) *Future[Out] {

	return Go(ctx, func(ctx context.Context) flow.Result[Out] {
		return flow.Bind(input.Await(ctx), func(r In) flow.Result[Out] {
			return onSuccess(ctx, r)
		})
	})
}

// OnSuccessMap awaits input and transforms its success value.
func OnSuccessMap[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) Out) *Future[Out] {

	return Go(ctx, func(ctx context.Context) flow.Result[Out] {
		return flow.Map(input.Await(ctx), func(r In) Out {
			return onSuccess(ctx, r)
		})
	})
}

func OnSuccessDo[T any](ctx context.Context, input *Future[T],
	onSuccess func(ctx context.Context, r T)) *Future[T] {

	return Go(ctx, func(ctx context.Context) flow.Result[T] {
		r := input.Await(ctx)
		if v, ok := r.Value(); ok {
			onSuccess(ctx, v)
		}
		return r
	})
}

// OnFailure awaits input and recovers a failure into a new Result.
func OnFailure[T any](ctx context.Context, input *Future[T],
	recoverWith func(ctx context.Context, f *flow.Failure) flow.Result[T]) *Future[T] {

	return Go(ctx, func(ctx context.Context) flow.Result[T] {
		r := input.Await(ctx)
		if r.IsSuccess() {
			return r
		}
		return recoverWith(ctx, failureOf(r))
	})
}

func OnFailureDo[T any](ctx context.Context, input *Future[T],
	onFailure func(ctx context.Context, f *flow.Failure)) *Future[T] {

	return Go(ctx, func(ctx context.Context) flow.Result[T] {
		r := input.Await(ctx)
		if r.IsFailure() {
			onFailure(ctx, failureOf(r))
		}
		return r
	})
}

func OnFailureMap[T any](ctx context.Context, input *Future[T],
	onFailure func(ctx context.Context, f *flow.Failure) *flow.Failure) *Future[T] {

	return Go(ctx, func(ctx context.Context) flow.Result[T] {
		r := input.Await(ctx)
		if r.IsSuccess() {
			return r
		}
		return flow.Failed[T](onFailure(ctx, failureOf(r)))
	})
}

// OnSuccessTry runs op for a successful input under an error boundary.
func OnSuccessTry[In, Out any](ctx context.Context, input flow.Result[In],
	op func(ctx context.Context, r In) (Out, error),
	handler func(err error) flow.Result[Out]) *Future[Out] {

	return Bind(ctx, input, func(ctx context.Context, r In) flow.Result[Out] {
		return flow.TryToFlow(func() (Out, error) { return op(ctx, r) }, handler)
	})
}

// OnSuccessTryBind awaits input and chains op under an error boundary. The
// boundary also covers the wait, so a panic raised by the antecedent is
// handed to handler as well.
func OnSuccessTryBind[In, Out any](ctx context.Context, input *Future[In],
	op func(ctx context.Context, r In) flow.Result[Out],
	handler func(err error) flow.Result[Out]) *Future[Out] {

	return Go(ctx, func(ctx context.Context) flow.Result[Out] {
		return flow.TryToFlowResult(func() flow.Result[Out] {
			return flow.Bind(input.Await(ctx), func(r In) flow.Result[Out] {
				return op(ctx, r)
			})
		}, handler)
	})
}

// OnFailureTry awaits input and recovers a failure under an error boundary.
// A success is re-wrapped inside the same boundary.
func OnFailureTry[T any](ctx context.Context, input *Future[T],
	op func(ctx context.Context, f *flow.Failure) flow.Result[T],
	handler func(err error) flow.Result[T]) *Future[T] {

	return Go(ctx, func(ctx context.Context) flow.Result[T] {
		return flow.TryToFlowResult(func() flow.Result[T] {
			return flow.Match(input.Await(ctx), func(f *flow.Failure) flow.Result[T] {
				return op(ctx, f)
			}, flow.Success[T])
		}, handler)
	})
}

// OnFailureTryValue is OnFailureTry for a recovery returning (T, error).
func OnFailureTryValue[T any](ctx context.Context, input *Future[T],
	op func(ctx context.Context, f *flow.Failure) (T, error),
	handler func(err error) flow.Result[T]) *Future[T] {

	return Go(ctx, func(ctx context.Context) flow.Result[T] {
		res, err := flow.Capture(func() (flow.Result[T], error) {
			r := input.Await(ctx)
			if v, ok := r.Value(); ok {
				return flow.Success(v), nil
			}
			v, err := op(ctx, failureOf(r))
			if err != nil {
				return flow.Result[T]{}, err
			}
			return flow.Success(v), nil
		})
		if err != nil {
			return handler(err)
		}
		return res
	})
}

func ReturnAs[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) Out) *Future[Out] {

	return OnSuccessMap(ctx, input, onSuccess)
}

func ReturnAsBoth[In, Out any](ctx context.Context, input *Future[In],
	onFailure func(ctx context.Context, f *flow.Failure) *flow.Failure,
	onSuccess func(ctx context.Context, r In) Out) *Future[Out] {

	return Go(ctx, func(ctx context.Context) flow.Result[Out] {
		return flow.MapBoth(input.Await(ctx),
			func(f *flow.Failure) *flow.Failure { return onFailure(ctx, f) },
			func(r In) Out { return onSuccess(ctx, r) })
	})
}

// Finally blocks until input is resolved and collapses it to a value.
func Finally[In, Out any](ctx context.Context, input *Future[In],
	onFailure func(f *flow.Failure) Out,
	onSuccess func(r In) Out) Out {

	return flow.Match(input.Await(ctx), onFailure, onSuccess)
}

// Match delivers the collapsed value on a one-shot channel. The channel is
// closed without a value when the pipeline panicked, so read it as
//
//	v, ok := <-ch
//
// where ok is false for a panicked pipeline. Use Finally or Await to have
// the panic raised on the calling goroutine instead.
func Match[In, Out any](ctx context.Context, input *Future[In],
	onFailure func(f *flow.Failure) Out,
	onSuccess func(r In) Out) <-chan Out {

	out := make(chan Out, 1)

	go func() {
		defer close(out)
		defer func() {
			_ = recover()
		}()

		out <- Finally(ctx, input, onFailure, onSuccess)
	}()

	return out
}

// Try runs op on its own goroutine under an error boundary.
func Try[T any](ctx context.Context, op func(ctx context.Context) (T, error),
	handler func(err error) flow.Result[T]) *Future[T] {

	return Go(ctx, func(ctx context.Context) flow.Result[T] {
		return flow.TryToFlow(func() (T, error) { return op(ctx) }, handler)
	})
}

// TryResult is Try for an operation that already returns a Result.
func TryResult[T any](ctx context.Context, op func(ctx context.Context) flow.Result[T],
	handler func(err error) flow.Result[T]) *Future[T] {

	return Go(ctx, func(ctx context.Context) flow.Result[T] {
		return flow.TryToFlowResult(func() flow.Result[T] { return op(ctx) }, handler)
	})
}

// All awaits every future in order and collects their values. The first
// failure in that order wins; later futures are still left running.
func All[T any](ctx context.Context, inputs ...*Future[T]) *Future[[]T] {
	return Go(ctx, func(ctx context.Context) flow.Result[[]T] {
		values := make([]T, 0, len(inputs))
		for _, in := range inputs {
			r := in.Await(ctx)
			v, ok := r.Value()
			if !ok {
				return flow.Failed[[]T](failureOf(r))
			}
			values = append(values, v)
		}
		return flow.Success(values)
	})
}

func failureOf[T any](r flow.Result[T]) *flow.Failure {
	return flow.Match(r, func(f *flow.Failure) *flow.Failure { return f }, func(T) *flow.Failure { return nil })
}
