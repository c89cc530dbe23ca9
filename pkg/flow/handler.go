package flow

// TryToFlow runs op inside an error boundary. A returned error or a panic,
// including a contract panic raised while wrapping the value, is handed to
// handler, which decides the failed result. Panics arrive as *PanicError.
func TryToFlow[T any](op func() (T, error), handler func(err error) Result[T]) Result[T] {
	res, err := Capture(func() (Result[T], error) {
		v, err := op()
		if err != nil {
			return Result[T]{}, err
		}
		return Success(v), nil
	})
	if err != nil {
		return handler(err)
	}
	return res
}

// TryToFlowResult is TryToFlow for operations that already return a Result.
func TryToFlowResult[T any](op func() Result[T], handler func(err error) Result[T]) Result[T] {
	res, err := Capture(func() (Result[T], error) {
		return op(), nil
	})
	if err != nil {
		return handler(err)
	}
	return res
}

// Capture runs op and converts a panic into a *PanicError. The handler of a
// boundary is called outside of it, so a panicking handler propagates.
func Capture[T any](op func() (Result[T], error)) (res Result[T], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res, err = Result[T]{}, AsError(rec)
		}
	}()
	return op()
}
