package godash

import (
	"github.com/godash/godash/container"
)

// Clone returns a one-level copy of value: a new container of the same
// family whose elements are the same references. Scalars and strings come
// back unchanged. Results are canonical containers ([]any, *container.Map)
// whatever the input's concrete type.
func Clone(value any) any {
	return cloneWith(value, false, nil)
}

// CloneWith is Clone with every stored element produced by cb(element).
func CloneWith(value any, cb func(any) any) any {
	return cloneWith(value, false, cb)
}

// CloneDeep returns a fully independent recursive copy of value.
func CloneDeep(value any) any {
	return cloneWith(value, true, nil)
}

// CloneDeepWith is CloneDeep with every stored top-level element produced by
// cb(copied element).
func CloneDeepWith(value any, cb func(any) any) any {
	return cloneWith(value, true, cb)
}

func cloneWith(value any, deep bool, cb func(any) any) any {
	if cb == nil {
		cb = func(v any) any { return v }
	}
	copied := container.ShallowCopy(value)
	if deep {
		copied = container.DeepCopy(value)
	}
	switch c := copied.(type) {
	case []any:
		res := make([]any, len(c))
		for i, v := range c {
			res[i] = cb(v)
		}
		return res
	case *container.Map:
		res := container.NewMap()
		for k, v := range c.All() {
			res.Set(k, cb(v))
		}
		return res
	}
	return copied
}
