package godash

import (
	"reflect"
	"testing"

	"github.com/godash/godash/container"
)

func TestSetPathCreatesIntermediates(t *testing.T) {
	got, err := SetPath(container.NewMap(), 5, []any{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	want := container.MapOf("a", container.MapOf("b", container.MapOf("c", 5)))
	if !container.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestSetPathDoesNotMutate(t *testing.T) {
	obj := container.MapOf("a", container.MapOf("b", 1))
	got, err := SetPath(obj, 2, []any{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if !container.DeepEqual(got, container.MapOf("a", container.MapOf("b", 2))) {
		t.Errorf("got %v", got)
	}
	if !obj.Equal(container.MapOf("a", container.MapOf("b", 1))) {
		t.Error("source changed")
	}
}

func TestSetPathPresentIntermediatesKept(t *testing.T) {
	obj := container.MapOf("a", container.MapOf("x", 1))
	got, err := SetPath(obj, 2, []any{"a", "y"})
	if err != nil {
		t.Fatal(err)
	}
	want := container.MapOf("a", container.MapOf("x", 1, "y", 2))
	if !container.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestSetPathSequences(t *testing.T) {
	// A scalar path is a single key.
	got, err := SetPath([]any{1, 2}, 9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []any{9, 2}) {
		t.Errorf("got %v", got)
	}

	// Index == length appends.
	got, err = SetPath([]any{1, 2}, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []any{1, 2, 3}) {
		t.Errorf("append: got %v", got)
	}

	// Appending through nesting regrows the inner sequence in place.
	obj := container.MapOf("a", []any{1})
	got, err = SetPath(obj, 2, []any{"a", 1})
	if err != nil {
		t.Fatal(err)
	}
	want := container.MapOf("a", []any{1, 2})
	if !container.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}

	if _, err := SetPath([]any{1}, 9, 5); err == nil {
		t.Error("out-of-range index should error")
	}
}

func TestSetPathParsedPath(t *testing.T) {
	p, err := container.ParsePath("$.a[0]")
	if err != nil {
		t.Fatal(err)
	}
	got, err := SetPath(container.MapOf("a", []any{1, 2}), 9, p)
	if err != nil {
		t.Fatal(err)
	}
	if !container.DeepEqual(got, container.MapOf("a", []any{9, 2})) {
		t.Errorf("got %v", got)
	}
}

func TestSetPathDefault(t *testing.T) {
	// Without a default, the missing step takes the current target's kind.
	got, err := SetPath(container.NewMap(), 1, []any{"a", 0})
	if err != nil {
		t.Fatal(err)
	}
	if !container.DeepEqual(got, container.MapOf("a", container.MapOf(0, 1))) {
		t.Errorf("got %v", got)
	}

	// With a sequence default, index 0 appends into it instead.
	got, err = SetPath(container.NewMap(), 1, []any{"a", 0}, WithDefault([]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if !container.DeepEqual(got, container.MapOf("a", []any{1})) {
		t.Errorf("got %v", got)
	}
}

func TestUpdatePath(t *testing.T) {
	got, err := UpdatePath(container.MapOf("n", 1), func(v any) any {
		return v.(int) + 1
	}, "n")
	if err != nil {
		t.Fatal(err)
	}
	if !container.DeepEqual(got, container.MapOf("n", 2)) {
		t.Errorf("got %v", got)
	}

	// The callback sees nil for an absent last key.
	got, err = UpdatePath(container.NewMap(), func(v any) any {
		if v != nil {
			t.Errorf("callback got %v want nil", v)
		}
		return "set"
	}, "k")
	if err != nil {
		t.Fatal(err)
	}
	if !container.DeepEqual(got, container.MapOf("k", "set")) {
		t.Errorf("got %v", got)
	}
}

func TestPathErrors(t *testing.T) {
	if _, err := UpdatePath(container.NewMap(), nil, "a"); err == nil {
		t.Error("nil callback should error")
	}
	if _, err := SetPath(container.NewMap(), 1, nil); err == nil {
		t.Error("empty path should error")
	}
	if _, err := SetPath(container.MapOf("a", 1), 2, []any{"a", "b"}); err == nil {
		t.Error("setting through a scalar should error")
	}
	if _, err := SetPath(5, 1, "a"); err == nil {
		t.Error("setting on a scalar should error")
	}
}
