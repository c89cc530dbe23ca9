package solo

import "github.com/ib-77/flow/pkg/flow"

// Then lifts a plain value through a Result returning function.
func Then[T, TOut any](input T, toResult func(v T) flow.Result[TOut]) flow.Result[TOut] {
	return toResult(input)
}

// OnSuccess transforms the success value. A failure passes through.
func OnSuccess[In, Out any](input flow.Result[In], onSuccess func(r In) Out) flow.Result[Out] {
	return flow.Map(input, onSuccess)
}

// OnSuccessDo runs a side effect on success and returns input.
func OnSuccessDo[T any](input flow.Result[T], onSuccess func(r T)) flow.Result[T] {
	if v, ok := input.Value(); ok {
		onSuccess(v)
	}
	return input
}

// OnSuccessBind chains a step that returns its own Result.
func OnSuccessBind[In, Out any](input flow.Result[In], onSuccess func(r In) flow.Result[Out]) flow.Result[Out] {
	return flow.Bind(input, onSuccess)
}

// OnSuccessTry runs op under an error boundary. An error or panic from op is
// converted by handler. A failure skips op.
func OnSuccessTry[In, Out any](input flow.Result[In],
	op func(r In) (Out, error),
	handler func(err error) flow.Result[Out]) flow.Result[Out] {

	return flow.Bind(input, func(r In) flow.Result[Out] {
		return flow.TryToFlow(func() (Out, error) { return op(r) }, handler)
	})
}

// OnSuccessTryBind is OnSuccessTry for a step that returns a Result.
func OnSuccessTryBind[In, Out any](input flow.Result[In],
	op func(r In) flow.Result[Out],
	handler func(err error) flow.Result[Out]) flow.Result[Out] {

	return flow.Bind(input, func(r In) flow.Result[Out] {
		return flow.TryToFlowResult(func() flow.Result[Out] { return op(r) }, handler)
	})
}

// OnFailure recovers a failure into a new Result of the same type.
func OnFailure[T any](input flow.Result[T], recoverWith func(f *flow.Failure) flow.Result[T]) flow.Result[T] {
	if input.IsSuccess() {
		return input
	}
	return recoverWith(failureOf(input))
}

// OnFailureMap replaces the failure value.
func OnFailureMap[T any](input flow.Result[T], onFailure func(f *flow.Failure) *flow.Failure) flow.Result[T] {
	if input.IsSuccess() {
		return input
	}
	return flow.Failed[T](onFailure(failureOf(input)))
}

// OnFailureDo runs a side effect on failure and returns input.
func OnFailureDo[T any](input flow.Result[T], onFailure func(f *flow.Failure)) flow.Result[T] {
	if input.IsFailure() {
		onFailure(failureOf(input))
	}
	return input
}

// OnFailureTry runs the recovery under an error boundary. The success path
// is re-wrapped inside the same boundary, so nothing escapes either way.
func OnFailureTry[T any](input flow.Result[T],
	op func(f *flow.Failure) flow.Result[T],
	handler func(err error) flow.Result[T]) flow.Result[T] {

	return flow.TryToFlowResult(func() flow.Result[T] {
		return flow.Match(input, op, flow.Success[T])
	}, handler)
}

// ReturnAs maps the success value to the output type.
func ReturnAs[In, Out any](input flow.Result[In], onSuccess func(r In) Out) flow.Result[Out] {
	return flow.Map(input, onSuccess)
}

// ReturnAsBoth maps whichever side input holds.
func ReturnAsBoth[In, Out any](input flow.Result[In],
	onFailure func(f *flow.Failure) *flow.Failure,
	onSuccess func(r In) Out) flow.Result[Out] {

	return flow.MapBoth(input, onFailure, onSuccess)
}

// Finally collapses the pipeline to a plain value.
func Finally[In, Out any](input flow.Result[In],
	onFailure func(f *flow.Failure) Out,
	onSuccess func(r In) Out) Out {

	return flow.Match(input, onFailure, onSuccess)
}

func failureOf[T any](r flow.Result[T]) *flow.Failure {
	return flow.Match(r, func(f *flow.Failure) *flow.Failure { return f }, func(T) *flow.Failure { return nil })
}
