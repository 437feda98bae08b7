// Package zero provides utilities for telling absent values apart from zero values of generic types.
package zero

import "reflect"

// IsNil reports whether value is absent: a nil pointer, interface, map, slice,
// func or channel. Values of kinds that cannot be nil (numbers, strings,
// structs, arrays) are never absent, even when they are the zero value.
func IsNil[T any](value T) bool {
	v := reflect.ValueOf(&value).Elem()

	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
