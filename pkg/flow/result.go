package flow

import "errors"

// Result holds exactly one of a success value or a failure.
//
// Results are immutable values; every operation returns a new one. The zero
// value is not a valid result and behaves as a failure carrying an
// UnknownFailure.
type Result[T any] struct {
	success   T
	failure   *Failure
	isSuccess bool
}

// Success wraps a value. It panics with ErrNilSuccessValue for nil values and
// with ErrFailureAsSuccess when v is itself a failure.
func Success[T any](v T) Result[T] {
	if IsNil(v) {
		panic(ErrNilSuccessValue)
	}
	if isFailureValue(v) {
		panic(ErrFailureAsSuccess)
	}
	return Result[T]{
		success:   v,
		failure:   CreateNoFailure(),
		isSuccess: true,
	}
}

// SuccessNone returns a successful result that carries no data.
func SuccessNone() Result[None] {
	return Success(NoneValue)
}

// Failed wraps a failure. It panics with ErrNilFailure when f is nil.
func Failed[T any](f *Failure) Result[T] {
	if f == nil {
		panic(ErrNilFailure)
	}
	return Result[T]{failure: f}
}

// FromValue is the explicit form of lifting a plain value into a Result.
func FromValue[T any](v T) Result[T] {
	return Success(v)
}

// FromFailure is the explicit form of lifting a failure into a Result.
func FromFailure[T any](f *Failure) Result[T] {
	return Failed[T](f)
}

// FromError lifts a Go (value, error) pair. A non-nil error that is, or
// wraps, a *Failure keeps that failure; any other error is converted with
// toFailure.
func FromError[T any](v T, err error, toFailure func(error) *Failure) Result[T] {
	if err == nil {
		return Success(v)
	}
	var f *Failure
	if errors.As(err, &f) && f != nil {
		return Failed[T](f)
	}
	return Failed[T](toFailure(err))
}

// restore rebuilds a result from its serialized parts without validation;
// the invariants were enforced when the original was constructed.
func restore[T any](success T, failure *Failure, isSuccess bool) Result[T] {
	if failure == nil {
		failure = CreateNoFailure()
	}
	return Result[T]{success: success, failure: failure, isSuccess: isSuccess}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.isSuccess {
		return nil
	}
	return r.failureValue()
}

// Value returns the success value and whether there is one.
func (r Result[T]) Value() (T, bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.success, true
}

// Match runs exactly one of the two actions.
func (r Result[T]) Match(onFailure func(f *Failure), onSuccess func(v T)) {
	if r.isSuccess {
		onSuccess(r.success)
	} else {
		onFailure(r.failureValue())
	}
}

func (r Result[T]) failureValue() *Failure {
	if r.failure == nil {
		return UnknownFailure("uninitialized result")
	}
	return r.failure
}

// Match collapses r into a value using the branch that matches its state.
func Match[T, TOut any](r Result[T], onFailure func(f *Failure) TOut, onSuccess func(v T) TOut) TOut {
	if r.isSuccess {
		return onSuccess(r.success)
	}
	return onFailure(r.failureValue())
}

// Map transforms the success value. A failure is carried over untouched.
func Map[TIn, TOut any](r Result[TIn], onSuccess func(v TIn) TOut) Result[TOut] {
	if r.isSuccess {
		return Success(onSuccess(r.success))
	}
	return Failed[TOut](r.failureValue())
}

// MapBoth transforms whichever side r holds.
func MapBoth[TIn, TOut any](r Result[TIn], onFailure func(f *Failure) *Failure, onSuccess func(v TIn) TOut) Result[TOut] {
	if r.isSuccess {
		return Success(onSuccess(r.success))
	}
	return Failed[TOut](onFailure(r.failureValue()))
}

// Bind chains a result producing step. The producer's result is returned as
// is; a failure skips the producer.
func Bind[TIn, TOut any](r Result[TIn], onSuccess func(v TIn) Result[TOut]) Result[TOut] {
	if r.isSuccess {
		return onSuccess(r.success)
	}
	return Failed[TOut](r.failureValue())
}
