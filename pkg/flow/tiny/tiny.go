package tiny

import (
	"context"

	"github.com/ib-77/flow/pkg/flow"
	"github.com/ib-77/flow/pkg/flow/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res flow.Result[T]
}

func Start[T any](ctx context.Context, r flow.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, flow.Success(v))
}

func (c Chain[T]) Result() flow.Result[T] {
	return c.res
}

func (c Chain[T]) with(r flow.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: r}
}

// proceed reports whether a success step may run. Once the context is done
// the chain turns into a TaskCancellationFailure.
func (c Chain[T]) proceed() (Chain[T], bool) {
	if c.res.IsFailure() {
		return c, false
	}
	if err := c.ctx.Err(); err != nil {
		return c.with(flow.Failed[T](flow.TaskCancellationFailure("chain cancelled", flow.WithException(err)))), false
	}
	return c, true
}

// Then composes functions that already return flow.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) flow.Result[T]) Chain[T] {
	c, ok := c.proceed()
	if !ok {
		return c
	}
	return c.with(solo.OnSuccessBind(c.res, func(t T) flow.Result[T] { return onSuccess(c.ctx, t) }))
}

// ThenTry composes functions that return (T, error), like repo calls. Errors
// and panics go to handler.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error),
	handler func(err error) flow.Result[T]) Chain[T] {

	c, ok := c.proceed()
	if !ok {
		return c
	}
	return c.with(solo.OnSuccessTry(c.res, func(t T) (T, error) { return try(c.ctx, t) }, handler))
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	c, ok := c.proceed()
	if !ok {
		return c
	}
	return c.with(solo.OnSuccess(c.res, func(t T) T { return onSuccess(c.ctx, t) }))
}

// Recover turns a failure back into a Result; success passes through.
func (c Chain[T]) Recover(onFailure func(ctx context.Context, f *flow.Failure) flow.Result[T]) Chain[T] {
	return c.with(solo.OnFailure(c.res, func(f *flow.Failure) flow.Result[T] { return onFailure(c.ctx, f) }))
}

func (c Chain[T]) MapFailure(onFailure func(ctx context.Context, f *flow.Failure) *flow.Failure) Chain[T] {
	return c.with(solo.OnFailureMap(c.res, func(f *flow.Failure) *flow.Failure { return onFailure(c.ctx, f) }))
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, *flow.Failure)) Chain[T] {
	c.res.Match(func(f *flow.Failure) {
		if onFailure != nil {
			onFailure(c.ctx, f)
		}
	}, func(t T) {
		if onSuccess != nil {
			onSuccess(c.ctx, t)
		}
	})
	return c
}

// Or returns the first successful chain, otherwise the first failure.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, otherwise the last one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return Chain[T]{ctx: c.ctx, res: last.res}
}

// RepeatUntil runs step at least once and stops when until reports true or
// the chain fails.
func (c Chain[T]) RepeatUntil(step func(ctx context.Context, t T) flow.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	for {
		c = c.Then(step)

		v, ok := c.res.Value()
		if !ok || until(c.ctx, v) {
			return c
		}
	}
}

// While runs step as long as cond holds and the chain succeeds.
func (c Chain[T]) While(step func(ctx context.Context, t T) flow.Result[T],
	cond func(ctx context.Context, t T) bool) Chain[T] {

	for {
		v, ok := c.res.Value()
		if !ok || !cond(c.ctx, v) {
			return c
		}
		c = c.Then(step)
	}
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(onFailure func(context.Context, *flow.Failure) T, onSuccess func(context.Context, T) T) T {
	return solo.Finally(c.res,
		func(f *flow.Failure) T { return onFailure(c.ctx, f) },
		func(t T) T { return onSuccess(c.ctx, t) })
}
