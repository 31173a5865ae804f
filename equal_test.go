package godash

import (
	"strings"
	"testing"

	"github.com/godash/godash/container"
)

type equalTest struct {
	name string
	a, b any
	want bool
}

var equalTests = []equalTest{
	{"scalars", "a", "a", true},
	{"scalars differ", "a", "b", false},
	{"nils", nil, nil, true},
	{"nil vs value", nil, 0, false},
	{"sequences", []any{1, 2, 3}, []any{1, 2, 3}, true},
	{"sequences cross type", []any{1, 2}, []int{1, 2}, true},
	{"sequences reordered", []any{1, 2}, []any{2, 1}, false},
	{"sequences length", []any{1, 2}, []any{1, 2, 3}, false},
	{"mappings ordered differently",
		container.MapOf("a", 1, "b", 2),
		container.MapOf("b", 2, "a", 1), true},
	{"mapping vs native map",
		container.MapOf("a", 1, "b", 2),
		map[string]any{"b": 2, "a": 1}, true},
	{"mappings differ", container.MapOf("a", 1), container.MapOf("a", 2), false},
	{"mapping vs sequence", container.MapOf("a", 1), []any{1}, false},
	{"nested",
		container.MapOf("a", []any{1, container.MapOf("b", 2)}),
		container.MapOf("a", []any{1, container.MapOf("b", 2)}), true},
}

func TestIsEqual(t *testing.T) {
	for _, et := range equalTests {
		if got := IsEqual(et.a, et.b); got != et.want {
			t.Errorf("%s: got %t want %t", et.name, got, et.want)
		}
	}
}

func TestIsEqualWith(t *testing.T) {
	foldCase := func(a, b any) any {
		as, aok := a.(string)
		bs, bok := b.(string)
		if aok && bok {
			return strings.EqualFold(as, bs)
		}
		return nil
	}
	if !IsEqualWith([]any{"A", "b"}, []any{"a", "B"}, foldCase) {
		t.Error("case-folded sequences should be equal")
	}
	if !IsEqualWith(container.MapOf("name", "FRED"), container.MapOf("name", "fred"), foldCase) {
		t.Error("case-folded mappings should be equal")
	}
	if IsEqualWith(container.MapOf("a", "x"), container.MapOf("b", "x"), foldCase) {
		t.Error("a key missing in b should be unequal")
	}
	if IsEqualWith([]any{"a"}, []any{"a", "b"}, foldCase) {
		t.Error("length mismatch should be unequal")
	}
	if !IsEqualWith(container.MapOf("a", []any{"X"}), container.MapOf("a", []any{"x"}), foldCase) {
		t.Error("comparator should apply through nesting")
	}
	// Without a comparator the element-wise walk is skipped entirely.
	if IsEqualWith([]any{"A"}, []any{"a"}, nil) {
		t.Error("nil comparator should fall back to strict equality")
	}
}
