package flow

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether v is nil or a nil pointer, interface, func or chan.
// Nil slices and maps are valid empty values and are not treated as nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsCancellation reports whether err stems from a cancelled or expired
// context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func isFailureValue(v any) bool {
	switch v.(type) {
	case *Failure, Failure:
		return true
	}
	return false
}
