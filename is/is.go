package is

import "reflect"

// Obj reports whether v is a mapping or a struct (pointer-wrapped or not).
// Nil is never an object.
func Obj(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map, reflect.Struct:
		return true
	default:
		return false
	}
}

// Map reports whether v is a mapping.
func Map(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

// Array reports whether v is a slice or array.
func Array(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// Func reports whether v is callable.
func Func(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// String reports whether v is a string.
func String(v any) bool {
	_, ok := v.(string)
	return ok
}

// Bool reports whether v is a bool.
func Bool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// True reports whether v is exactly the boolean true.
func True(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// False reports whether v is exactly the boolean false.
func False(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}

// Nil reports whether v is nil, including typed nil pointers, maps,
// slices, funcs, channels, and interfaces.
func Nil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Empty reports whether v is nil, an empty string, an empty sequence,
// or an empty mapping. Scalars are never empty.
func Empty(v any) bool {
	if Nil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}

// Number reports whether v is any integer or floating-point value.
func Number(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Int reports whether v is an integer value (signed or unsigned).
func Int(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// Float reports whether v is a floating-point value.
func Float(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
