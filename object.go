package godash

import (
	"slices"

	"github.com/go-softwarelab/common/pkg/seq2"

	"github.com/godash/godash/container"
)

// Keys returns obj's keys in iteration order: indexes for sequences, keys
// for mappings.
func Keys(obj any) []any {
	return slices.Collect(seq2.Keys(container.Iter(obj)))
}

// Values returns obj's values in iteration order.
func Values(obj any) []any {
	return slices.Collect(seq2.Values(container.Iter(obj)))
}

// Pairs returns obj's [key, value] pairs in iteration order.
func Pairs(obj any) [][2]any {
	var res [][2]any
	for k, v := range container.Iter(obj) {
		res = append(res, [2]any{k, v})
	}
	return res
}

// Has reports whether key appears among obj's iterated keys.
func Has(obj, key any) bool {
	for k := range container.Iter(obj) {
		if container.DeepEqual(k, key) {
			return true
		}
	}
	return false
}

// Functions returns the keys, in iteration order, whose values are callable.
func Functions(obj any) []any {
	var res []any
	for k, v := range container.Iter(obj) {
		if IsFunction(v) {
			res = append(res, k)
		}
	}
	return res
}

// FindKey returns the first key, in forward iteration order, for which the
// normalized callback is truthy.
func FindKey(obj, callback any) (any, bool) {
	return findKey(obj, callback, false)
}

// FindLastKey is FindKey in reverse iteration order.
func FindLastKey(obj, callback any) (any, bool) {
	return findKey(obj, callback, true)
}

func findKey(obj, callback any, reverse bool) (any, bool) {
	for c := range callIter(obj, callback, reverse) {
		if truthy(c.result) {
			return c.key, true
		}
	}
	return nil, false
}

// ForIn invokes the normalized callback for every pair of obj in iteration
// order and returns obj. A callback returning exactly false stops the walk;
// no later pair is visited.
func ForIn(obj, callback any) any {
	return forIn(obj, callback, false)
}

// ForInRight is ForIn in reverse iteration order.
func ForInRight(obj, callback any) any {
	return forIn(obj, callback, true)
}

func forIn(obj, callback any, reverse bool) any {
	for c := range callIter(obj, callback, reverse) {
		if isFalse(c.result) {
			break
		}
	}
	return obj
}

// MapValues builds a new mapping with obj's keys and the normalized
// callback's result for each (value, key, obj).
func MapValues(obj, callback any) *container.Map {
	res := container.NewMap()
	for c := range callIter(obj, callback, false) {
		res.Set(c.key, c.result)
	}
	return res
}

// TransformFunc folds one pair into the accumulator. Returning exactly false
// stops the fold; any other result continues it. By convention the callback
// mutates acc in place.
type TransformFunc func(acc, value, key, obj any) any

// Transform folds obj into accumulator and returns it. A nil accumulator
// defaults to a fresh *[]any, which callbacks append through. A nil callback
// returns the accumulator unchanged per step.
func Transform(obj any, callback TransformFunc, accumulator any) any {
	if callback == nil {
		callback = func(acc, _, _, _ any) any { return acc }
	}
	if accumulator == nil {
		accumulator = &[]any{}
	}
	for k, v := range container.Iter(obj) {
		if isFalse(callback(accumulator, v, k, obj)) {
			break
		}
	}
	return accumulator
}

// Invert returns a new mapping from value to key for every pair of obj. When
// two keys share a value the later-iterated key wins. Values must be
// hashable; an uncomparable value panics, like a native map write.
func Invert(obj any) *container.Map {
	res := container.NewMap()
	for k, v := range container.Iter(obj) {
		res.Set(v, k)
	}
	return res
}

// RenameKeys returns a new mapping with obj's keys replaced by keyMap's entry
// where present. Values are carried over as-is.
func RenameKeys(obj, keyMap *container.Map) *container.Map {
	res := container.NewMap()
	for k, v := range obj.All() {
		if alt, ok := keyMap.Get(k); ok {
			k = alt
		}
		res.Set(k, v)
	}
	return res
}
