package container

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/go-softwarelab/common/pkg/seq2"
)

// Iter yields (key, value) pairs lazily: index order for sequences and
// strings (elements of a string are one-character strings), insertion order
// for *Map, sorted-key order for native Go maps, whose own iteration order is
// randomized. Scalars yield nothing.
func Iter(obj any) iter.Seq2[any, any] {
	switch o := obj.(type) {
	case nil:
		return empty
	case *Map:
		return o.All()
	case string:
		return func(yield func(any, any) bool) {
			for i, r := range []rune(o) {
				if !yield(i, string(r)) {
					return
				}
			}
		}
	}
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any, any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(i, rv.Index(i).Interface()) {
					return
				}
			}
		}
	case reflect.Map:
		keys := sortedMapKeys(rv)
		return func(yield func(any, any) bool) {
			for _, k := range keys {
				if !yield(k.Interface(), rv.MapIndex(k).Interface()) {
					return
				}
			}
		}
	}
	return empty
}

// IterReverse is the exact reversal of Iter's order.
func IterReverse(obj any) iter.Seq2[any, any] {
	return seq2.Reverse(Iter(obj))
}

func empty(func(any, any) bool) {}

func sortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return compareKeys(a.Interface(), b.Interface())
	})
	return keys
}

func compareKeys(a, b any) int {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
