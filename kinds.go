package godash

import (
	"reflect"
	"regexp"
	"time"

	"github.com/godash/godash/container"
)

// Kind checks. All are total: any input, no panics.

func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNumber reports whether v is any integer, unsigned or float kind.
// Booleans are not numbers.
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	}
	return false
}

func IsInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	}
	return false
}

func IsFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsList reports whether v is a sequence (any slice or array).
func IsList(v any) bool {
	return container.IsSequence(v)
}

// IsDict reports whether v is a mapping (*container.Map or a native map).
func IsDict(v any) bool {
	return container.IsMapping(v)
}

// IsObject reports whether v is a container: a sequence or a mapping.
func IsObject(v any) bool {
	return container.IsContainer(v)
}

func IsDate(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time:
		return true
	}
	return false
}

func IsFunction(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Func
}

func IsRegExp(v any) bool {
	_, ok := v.(*regexp.Regexp)
	return ok
}

func IsError(v any) bool {
	_, ok := v.(error)
	return ok
}

// IsAssociative reports whether v supports indexed or keyed lookup: a
// sequence, a mapping or a string.
func IsAssociative(v any) bool {
	return IsObject(v) || IsString(v)
}

// IsIndexed reports whether v is integer-indexed: a sequence or a string.
func IsIndexed(v any) bool {
	return IsList(v) || IsString(v)
}

// IsNone reports whether v is nil, including typed nil pointers, maps,
// slices, funcs and channels.
func IsNone(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
