// Package encode bridges the library's containers to and from text (YAML,
// JSON) and native Go values, preserving mapping key order.
package encode

import (
	"encoding/json"
	"fmt"
	"math"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/godash/godash/container"
)

// Decode parses YAML (or JSON, a YAML subset) into canonical containers:
// *container.Map for mappings, []any for sequences. Mapping key order
// follows the document.
func Decode(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromGo(v), nil
}

// Marshal renders containers as YAML, mapping keys in insertion order.
func Marshal(v any) ([]byte, error) {
	d, err := yaml.Marshal(toYAML(v))
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return d, nil
}

// MarshalJSON renders containers as JSON, mapping keys in insertion order.
func MarshalJSON(v any) ([]byte, error) {
	d, err := json.Marshal(FromGo(v))
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return d, nil
}

// MergePatch applies an RFC 7386 JSON merge patch to a JSON document,
// both given as raw text.
func MergePatch(doc, patch []byte) ([]byte, error) {
	res, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return res, nil
}

// FromGo canonicalizes a value: slices to []any, native maps and yaml
// ordered maps to *container.Map, in-range uint64 to int64. Native map keys
// iterate sorted, so the resulting order is deterministic.
func FromGo(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case yaml.MapSlice:
		m := container.NewMap()
		for _, item := range x {
			m.Set(item.Key, FromGo(item.Value))
		}
		return m
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x)
		}
		return x
	case string:
		return x
	}
	switch container.KindOf(v) {
	case container.KindSequence:
		res := make([]any, 0, container.Len(v))
		for _, e := range container.Iter(v) {
			res = append(res, FromGo(e))
		}
		return res
	case container.KindMapping:
		m := container.NewMap()
		for k, e := range container.Iter(v) {
			m.Set(k, FromGo(e))
		}
		return m
	}
	return v
}

// ToGo converts containers back to native Go values: *container.Map to
// map[string]any (non-string keys formatted), []any elements recursively.
// Insertion order is lost; use FromGo's canonical forms to keep it.
func ToGo(v any) any {
	switch x := v.(type) {
	case *container.Map:
		res := make(map[string]any, x.Len())
		for k, e := range x.All() {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			res[ks] = ToGo(e)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = ToGo(e)
		}
		return res
	}
	return v
}

func toYAML(v any) any {
	switch x := v.(type) {
	case *container.Map:
		res := make(yaml.MapSlice, 0, x.Len())
		for k, e := range x.All() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(e)})
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = toYAML(e)
		}
		return res
	}
	if container.IsContainer(v) {
		return toYAML(FromGo(v))
	}
	return v
}
