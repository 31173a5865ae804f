package container

import (
	"fmt"
	"reflect"
)

// Get looks key up in obj: keyed lookup on mappings, index lookup on
// sequences and strings. The bool result reports presence.
func Get(obj, key any) (any, bool) {
	switch o := obj.(type) {
	case nil:
		return nil, false
	case *Map:
		return o.Get(key)
	case string:
		i, ok := toIndex(key)
		rs := []rune(o)
		if !ok || i < 0 || i >= len(rs) {
			return nil, false
		}
		return string(rs[i]), true
	}
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		i, ok := toIndex(key)
		if !ok || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Map:
		kv := reflect.ValueOf(key)
		kt := rv.Type().Key()
		if !kv.IsValid() {
			return nil, false
		}
		if !kv.Type().AssignableTo(kt) {
			ck, ok := convertKey(kv, kt)
			if !ok {
				return nil, false
			}
			kv = ck
		}
		ev := rv.MapIndex(kv)
		if !ev.IsValid() {
			return nil, false
		}
		return ev.Interface(), true
	}
	return nil, false
}

// Set writes value at key in obj, which must be a *Map or []any. Sequence
// indexes up to len are accepted; index len appends and the possibly regrown
// sequence is returned, so callers must keep the result.
func Set(obj, key, value any) (any, error) {
	switch o := obj.(type) {
	case *Map:
		o.Set(key, value)
		return o, nil
	case []any:
		i, ok := toIndex(key)
		if !ok {
			return nil, fmt.Errorf("sequence key %v (%T) is not an index", key, key)
		}
		switch {
		case i >= 0 && i < len(o):
			o[i] = value
			return o, nil
		case i == len(o):
			return append(o, value), nil
		}
		return nil, fmt.Errorf("index %d out of range for sequence of length %d", i, len(o))
	}
	return nil, fmt.Errorf("cannot set key %v on %T", key, obj)
}

// SetDefault is Set restricted to absent keys: a present key (or in-range
// sequence index) leaves obj unchanged.
func SetDefault(obj, key, value any) (any, error) {
	if _, ok := Get(obj, key); ok {
		return obj, nil
	}
	return Set(obj, key, value)
}

// convertKey converts a lookup key to the map's key type only when the
// conversion is numeric and lossless. Anything else is a miss: int to string
// would yield the key's code point, float to int would truncate.
func convertKey(kv reflect.Value, kt reflect.Type) (reflect.Value, bool) {
	if !numericKind(kv.Kind()) || !numericKind(kt.Kind()) {
		return reflect.Value{}, false
	}
	if !kv.Type().ConvertibleTo(kt) {
		return reflect.Value{}, false
	}
	ck := kv.Convert(kt)
	// Two's-complement wraparound survives a round trip, so the sign needs
	// its own check.
	if negativeValue(kv) != negativeValue(ck) {
		return reflect.Value{}, false
	}
	if !ck.Convert(kv.Type()).Equal(kv) {
		return reflect.Value{}, false
	}
	return ck, true
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func negativeValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}

func toIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), true
	}
	return 0, false
}

// DeepEqual is structural equality over the library's containers: mappings
// compare as unordered key/value sets, sequences element-wise regardless of
// element type, everything else by reflect.DeepEqual. Cyclic containers are
// not supported.
func DeepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindMapping:
		if Len(a) != Len(b) {
			return false
		}
		for k, av := range Iter(a) {
			bv, ok := Get(b, k)
			if !ok || !DeepEqual(av, bv) {
				return false
			}
		}
		return true
	case KindSequence:
		if Len(a) != Len(b) {
			return false
		}
		bv := reflect.ValueOf(b)
		i := 0
		for _, av := range Iter(a) {
			if !DeepEqual(av, bv.Index(i).Interface()) {
				return false
			}
			i++
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}
