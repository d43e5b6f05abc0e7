// Package is provides runtime type guards for values held in interfaces,
// such as the leaves of a decoded document.
//
// Nil treats typed nils (a nil *T, map, slice, chan or func stored in an
// interface) the same as an untyped nil.
package is

import (
	"math"
	"reflect"
	"regexp"
	"time"
)

// Nil reports whether v is nil or an interface holding a nil pointer, map,
// slice, channel or function.
func Nil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// NotNil is the negation of [Nil].
func NotNil(v any) bool { return !Nil(v) }

// Bool reports whether v is a bool.
func Bool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// Func reports whether v is a non-nil function.
func Func(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// Number reports whether v is an integer or floating-point number.
func Number(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// String reports whether v is a string.
func String(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.String
}

// Object reports whether v is a non-nil map or struct, or a pointer to one.
func Object(v any) bool {
	if Nil(v) {
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Map || t.Kind() == reflect.Struct
}

// Date reports whether v is a time.Time or a non-nil *time.Time.
func Date(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

// RegExp reports whether v is a non-nil *regexp.Regexp.
func RegExp(v any) bool {
	re, ok := v.(*regexp.Regexp)
	return ok && re != nil
}

// Truthy reports whether v is not the zero value of its type. Nil, false,
// 0, NaN, "" and empty slices and maps are falsy.
func Truthy(v any) bool {
	if Nil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String, reflect.Chan:
		return rv.Len() > 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return !rv.IsZero()
}

// TypeName returns a short name for v's dynamic type: "nil" for nil and
// the Go type name otherwise, such as "int" or "*dot.Map".
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
