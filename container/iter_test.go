package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(obj any) (keys, values []any) {
	for k, v := range Iter(obj) {
		keys = append(keys, k)
		values = append(values, v)
	}
	return
}

func TestIterMap(t *testing.T) {
	keys, values := collect(MapOf("b", 1, "a", 2))
	assert.Equal(t, []any{"b", "a"}, keys)
	assert.Equal(t, []any{1, 2}, values)
}

func TestIterSequence(t *testing.T) {
	keys, values := collect([]any{"x", "y"})
	assert.Equal(t, []any{0, 1}, keys)
	assert.Equal(t, []any{"x", "y"}, values)

	// Typed slices and arrays iterate the same way.
	keys, values = collect([2]int{7, 8})
	assert.Equal(t, []any{0, 1}, keys)
	assert.Equal(t, []any{7, 8}, values)
}

func TestIterString(t *testing.T) {
	keys, values := collect("héllo")
	assert.Equal(t, []any{0, 1, 2, 3, 4}, keys)
	assert.Equal(t, []any{"h", "é", "l", "l", "o"}, values)
}

func TestIterNativeMapSorted(t *testing.T) {
	keys, values := collect(map[string]int{"c": 3, "a": 1, "b": 2})
	assert.Equal(t, []any{"a", "b", "c"}, keys)
	assert.Equal(t, []any{1, 2, 3}, values)

	// Numeric keys sort numerically, not lexically.
	keys, _ = collect(map[int]string{10: "x", 2: "y", 1: "z"})
	assert.Equal(t, []any{1, 2, 10}, keys)
}

func TestIterScalar(t *testing.T) {
	keys, _ := collect(5)
	assert.Nil(t, keys)
	keys, _ = collect(nil)
	assert.Nil(t, keys)
}

func TestIterReverse(t *testing.T) {
	for _, obj := range []any{
		MapOf("a", 1, "b", 2, "c", 3),
		[]any{10, 20, 30},
		"abc",
		map[string]int{"a": 1, "b": 2},
	} {
		keys, values := collect(obj)
		var rkeys, rvalues []any
		for k, v := range IterReverse(obj) {
			rkeys = append(rkeys, k)
			rvalues = append(rvalues, v)
		}
		for i := range keys {
			j := len(keys) - 1 - i
			assert.Equal(t, keys[i], rkeys[j])
			assert.Equal(t, values[i], rvalues[j])
		}
	}
}

func TestIterEarlyBreak(t *testing.T) {
	n := 0
	for range Iter([]any{1, 2, 3}) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
