package godash

import (
	"github.com/godash/godash/container"
	"github.com/godash/godash/debug"
)

// Callback is the normalized three-argument callback form. Anywhere a
// callback is accepted as `any`, it is normalized:
//
//   - nil: identity of the value
//   - Callback or a func of (value[, key[, obj]]) returning any or bool:
//     used as-is, missing trailing arguments ignored
//   - a string: property lookup of that name on the value (pluck)
//   - a mapping: superset match of the value against the partial (where)
//   - any other literal: structural equality with the literal
type Callback func(value, key, obj any) any

func normalize(spec any) Callback {
	switch cb := spec.(type) {
	case nil:
		return func(value, _, _ any) any { return value }
	case Callback:
		return cb
	case func(value, key, obj any) any:
		return cb
	case func(value, key, obj any) bool:
		return func(v, k, o any) any { return cb(v, k, o) }
	case func(value, key any) any:
		return func(v, k, _ any) any { return cb(v, k) }
	case func(value any) any:
		return func(v, _, _ any) any { return cb(v) }
	case func(value any) bool:
		return func(v, _, _ any) any { return cb(v) }
	case string:
		if debug.Callback() {
			debug.Logf("callback: pluck %q\n", cb)
		}
		return pluck(cb)
	}
	if container.IsMapping(spec) {
		if debug.Callback() {
			debug.Logf("callback: where %s\n", debug.Dump(spec))
		}
		return whereMatch(spec)
	}
	lit := spec
	return func(v, _, _ any) any { return container.DeepEqual(v, lit) }
}

// callbackFunc reports whether spec is one of the accepted function forms.
// Used where a non-function spec means something else, like Pick's property
// list.
func callbackFunc(spec any) (Callback, bool) {
	switch spec.(type) {
	case nil, string:
		return nil, false
	case Callback,
		func(value, key, obj any) any,
		func(value, key, obj any) bool,
		func(value, key any) any,
		func(value any) any,
		func(value any) bool:
		return normalize(spec), true
	}
	return nil, false
}

func pluck(name string) Callback {
	return func(v, _, _ any) any {
		res, _ := container.Get(v, name)
		return res
	}
}

// whereMatch requires every key/value pair of the partial to be present and
// structurally equal on the value.
func whereMatch(partial any) Callback {
	return func(v, _, _ any) any {
		for k, want := range container.Iter(partial) {
			got, ok := container.Get(v, k)
			if !ok || !container.DeepEqual(got, want) {
				return false
			}
		}
		return true
	}
}

func truthy(v any) bool {
	return container.Truth(v)
}

// isFalse detects the exact boolean false, the early-termination sentinel.
func isFalse(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}
