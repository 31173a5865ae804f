package godash

import (
	"github.com/godash/godash/container"
)

// Pick returns a new mapping of obj's pairs selected by selector: a callback
// function keeps the pairs it is truthy for; anything else is flattened
// together with properties into a list of key names to keep. Obj is never
// mutated.
func Pick(obj, selector any, properties ...any) *container.Map {
	pred := pickPredicate(selector, properties)
	res := container.NewMap()
	for k, v := range container.Iter(obj) {
		if truthy(pred(v, k, obj)) {
			res.Set(k, v)
		}
	}
	return res
}

// Omit is the complement of Pick: it keeps the pairs the predicate is falsy
// for, or whose keys are not in the property list.
func Omit(obj, selector any, properties ...any) *container.Map {
	pred := pickPredicate(selector, properties)
	res := container.NewMap()
	for k, v := range container.Iter(obj) {
		if !truthy(pred(v, k, obj)) {
			res.Set(k, v)
		}
	}
	return res
}

func pickPredicate(selector any, properties []any) Callback {
	if cb, ok := callbackFunc(selector); ok {
		return cb
	}
	props := flattenDeep(append([]any{selector}, properties...), nil)
	return func(_, key, _ any) any {
		for _, p := range props {
			if container.DeepEqual(key, p) {
				return true
			}
		}
		return false
	}
}

// flattenDeep flattens nested sequences into dst, dropping nils.
func flattenDeep(v any, dst []any) []any {
	if v == nil {
		return dst
	}
	if container.IsSequence(v) {
		for _, e := range container.Iter(v) {
			dst = flattenDeep(e, dst)
		}
		return dst
	}
	return append(dst, v)
}
