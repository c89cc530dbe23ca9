package potential

import "github.com/ib-77/flow/pkg/flow"

// Sequence turns a slice of potentials into a potential slice. It walks the
// input left to right and stops at the first empty element. A nil slice
// panics with flow.ErrNilSource; an empty one yields an empty slice value.
func Sequence[T any](items []Potential[T]) Potential[[]T] {
	if items == nil {
		panic(flow.ErrNilSource)
	}

	values := make([]T, 0, len(items))
	for _, p := range items {
		if !p.hasValue {
			return WithoutValue[[]T]()
		}
		values = append(values, p.value)
	}
	return Potential[[]T]{value: values, hasValue: true}
}

// Traverse maps every item with f and sequences the outcome. f is not called
// for the items after the first empty result.
func Traverse[T, TOut any](items []T, f func(v T) Potential[TOut]) Potential[[]TOut] {
	if items == nil {
		panic(flow.ErrNilSource)
	}

	values := make([]TOut, 0, len(items))
	for _, item := range items {
		p := f(item)
		if !p.hasValue {
			return WithoutValue[[]TOut]()
		}
		values = append(values, p.value)
	}
	return Potential[[]TOut]{value: values, hasValue: true}
}
