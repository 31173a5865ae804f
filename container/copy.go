package container

import "reflect"

// DeepCopy returns a fully independent recursive copy of v. Sequences
// canonicalize to []any and mappings to *Map; scalars are returned as-is.
// A cyclic value recurses without bound.
func DeepCopy(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *Map:
		res := NewMap()
		for k, val := range x.All() {
			res.Set(k, DeepCopy(val))
		}
		return res
	case string:
		return x
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		res := make([]any, 0, Len(v))
		for _, val := range Iter(v) {
			res = append(res, DeepCopy(val))
		}
		return res
	case reflect.Map:
		res := NewMap()
		for k, val := range Iter(v) {
			res.Set(k, DeepCopy(val))
		}
		return res
	}
	return v
}

// ShallowCopy returns a one-level copy: a new canonical container holding the
// same element references, or the value itself for scalars and strings.
func ShallowCopy(v any) any {
	switch KindOf(v) {
	case KindSequence:
		res := make([]any, 0, Len(v))
		for _, val := range Iter(v) {
			res = append(res, val)
		}
		return res
	case KindMapping:
		res := NewMap()
		for k, val := range Iter(v) {
			res.Set(k, val)
		}
		return res
	}
	return v
}
