package godash

import (
	"fmt"

	"github.com/godash/godash/container"
	"github.com/godash/godash/debug"
)

type pathConfig struct {
	def any
}

type PathOption func(*pathConfig)

// WithDefault sets the value deep-copied into missing intermediate path
// steps. Without it, a missing step becomes an empty mapping when the
// current target is a mapping, else an empty sequence.
func WithDefault(v any) PathOption {
	return func(c *pathConfig) { c.def = v }
}

// UpdatePath deep-copies obj, walks path creating missing intermediate
// containers (present values are never overridden), replaces the value at
// the last key with cb(currentValueOrNil), and returns the new top-level
// object. obj itself is never mutated; the result uses canonical containers.
//
// path is a key list ([]any or any slice), a single scalar key, or a
// *container.Path from container.ParsePath. Setting through a non-container
// value is an error; a sequence index equal to the length appends.
func UpdatePath(obj any, cb func(any) any, path any, opts ...PathOption) (any, error) {
	cfg := &pathConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if cb == nil {
		return nil, fmt.Errorf("update path: nil callback")
	}
	keys := coercePath(path)
	if len(keys) == 0 {
		return nil, fmt.Errorf("update path: empty path")
	}
	if debug.Path() {
		debug.Logf("update path %v on %s\n", keys, debug.Dump(obj))
	}
	return updatePath(container.DeepCopy(obj), keys, cb, cfg.def)
}

// SetPath is UpdatePath writing a fixed value at the last key.
func SetPath(obj, value, path any, opts ...PathOption) (any, error) {
	return UpdatePath(obj, func(any) any { return value }, path, opts...)
}

func updatePath(cur any, keys []any, cb func(any) any, def any) (any, error) {
	k := keys[0]
	if len(keys) == 1 {
		old, _ := container.Get(cur, k)
		res, err := container.Set(cur, k, cb(old))
		if err != nil {
			return nil, fmt.Errorf("update path at %v: %w", k, err)
		}
		return res, nil
	}
	child, ok := container.Get(cur, k)
	if !ok {
		d := def
		if d == nil {
			d = emptyFor(cur)
		}
		child = container.DeepCopy(d)
	}
	child, err := updatePath(child, keys[1:], cb, def)
	if err != nil {
		return nil, err
	}
	res, err := container.Set(cur, k, child)
	if err != nil {
		return nil, fmt.Errorf("update path at %v: %w", k, err)
	}
	return res, nil
}

func emptyFor(target any) any {
	if container.IsMapping(target) {
		return container.NewMap()
	}
	return []any{}
}

func coercePath(path any) []any {
	switch p := path.(type) {
	case nil:
		return nil
	case *container.Path:
		return p.Segments()
	case []any:
		return p
	}
	if container.IsSequence(path) {
		var res []any
		for _, k := range container.Iter(path) {
			res = append(res, k)
		}
		return res
	}
	return []any{path}
}
