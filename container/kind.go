package container

import "reflect"

// Kind classifies a value for iteration purposes. Strings get their own kind:
// they are indexed like sequences but immutable and scalar-like elsewhere.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	case KindString:
		return "String"
	default:
		return "Scalar"
	}
}

func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindScalar
	case *Map:
		return KindMapping
	case string:
		return KindString
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMapping
	}
	return KindScalar
}

func IsSequence(v any) bool { return KindOf(v) == KindSequence }
func IsMapping(v any) bool  { return KindOf(v) == KindMapping }

// IsContainer reports whether v is a sequence or a mapping.
func IsContainer(v any) bool {
	k := KindOf(v)
	return k == KindSequence || k == KindMapping
}

// Len returns the element count of a container or string, -1 otherwise.
func Len(v any) int {
	switch x := v.(type) {
	case nil:
		return -1
	case *Map:
		return x.Len()
	case string:
		return len([]rune(x))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return -1
}

// Truth reports the truthiness of v: nil, false, zero numbers and empty
// containers and strings are falsy, everything else is truthy.
func Truth(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case *Map:
		return x.Len() != 0
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case uintptr:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
