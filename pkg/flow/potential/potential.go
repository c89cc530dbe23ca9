package potential

import (
	"fmt"

	"github.com/ib-77/flow/pkg/flow"
)

// Potential is a value that may or may not be present. The zero value holds
// no value.
type Potential[T any] struct {
	value    T
	hasValue bool
}

// WithValue wraps v. It panics with flow.ErrNilValue when v is nil.
func WithValue[T any](v T) Potential[T] {
	if flow.IsNil(v) {
		panic(flow.ErrNilValue)
	}
	return Potential[T]{value: v, hasValue: true}
}

func WithoutValue[T any]() Potential[T] {
	return Potential[T]{}
}

// From wraps v, mapping nil to an empty Potential instead of panicking.
func From[T any](v T) Potential[T] {
	if flow.IsNil(v) {
		return WithoutValue[T]()
	}
	return Potential[T]{value: v, hasValue: true}
}

func (p Potential[T]) HasValue() bool {
	return p.hasValue
}

func (p Potential[T]) HasNoValue() bool {
	return !p.hasValue
}

// GetValueOr returns the held value or fallback.
func (p Potential[T]) GetValueOr(fallback T) T {
	if p.hasValue {
		return p.value
	}
	return fallback
}

// Match runs exactly one of the two actions.
func (p Potential[T]) Match(onNone func(), onValue func(v T)) {
	if p.hasValue {
		onValue(p.value)
	} else {
		onNone()
	}
}

func (p Potential[T]) String() string {
	if !p.hasValue {
		return flow.NoneValue.String()
	}
	return fmt.Sprintf("Potential(%v)", p.value)
}

// Match collapses p into a value.
func Match[T, TOut any](p Potential[T], onNone func() TOut, onValue func(v T) TOut) TOut {
	if p.hasValue {
		return onValue(p.value)
	}
	return onNone()
}

// Map transforms the held value. It panics with flow.ErrNilValue when f
// returns nil; use Bind with From to map into an optional.
func Map[TIn, TOut any](p Potential[TIn], f func(v TIn) TOut) Potential[TOut] {
	if !p.hasValue {
		return WithoutValue[TOut]()
	}
	return WithValue(f(p.value))
}

func Bind[TIn, TOut any](p Potential[TIn], f func(v TIn) Potential[TOut]) Potential[TOut] {
	if !p.hasValue {
		return WithoutValue[TOut]()
	}
	return f(p.value)
}

// AndThen is Bind under the name the fluent surface uses.
func AndThen[TIn, TOut any](p Potential[TIn], f func(v TIn) Potential[TOut]) Potential[TOut] {
	return Bind(p, f)
}

// AndThenMap is Map under the name the fluent surface uses.
func AndThenMap[TIn, TOut any](p Potential[TIn], f func(v TIn) TOut) Potential[TOut] {
	return Map(p, f)
}

// OrElse returns p when it holds a value, otherwise the alternative.
// The alternative is only evaluated when needed.
func OrElse[T any](p Potential[T], alternative func() Potential[T]) Potential[T] {
	if p.hasValue {
		return p
	}
	return alternative()
}

// OrElseValue is OrElse for a plain fallback value; nil becomes empty.
func OrElseValue[T any](p Potential[T], fallback func() T) Potential[T] {
	if p.hasValue {
		return p
	}
	return From(fallback())
}

// ToResult turns an empty Potential into the failure built by onNone.
func ToResult[T any](p Potential[T], onNone func() *flow.Failure) flow.Result[T] {
	if p.hasValue {
		return flow.Success(p.value)
	}
	return flow.Failed[T](onNone())
}
