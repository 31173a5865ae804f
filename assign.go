package godash

import (
	"github.com/godash/godash/container"
	"github.com/godash/godash/debug"
)

// AssignFunc resolves a key conflict from the destination's current value
// (nil when absent) and the incoming source value.
type AssignFunc func(objValue, srcValue any) any

// Assign copies every key/value pair of each source into dest, one level
// deep. Later sources win. Mutates and returns dest.
func Assign(dest *container.Map, sources ...*container.Map) *container.Map {
	return AssignWith(dest, nil, sources...)
}

// AssignWith is Assign with the stored value produced by cb(current, incoming).
func AssignWith(dest *container.Map, cb AssignFunc, sources ...*container.Map) *container.Map {
	for _, src := range sources {
		for k, v := range src.All() {
			if cb != nil {
				old, _ := dest.Get(k)
				v = cb(old, v)
			}
			dest.Set(k, v)
		}
	}
	return dest
}

// Defaults fills dest with each source's pairs for keys dest does not have
// yet. A key filled by an earlier source is not overwritten by a later one.
// Mutates and returns dest.
func Defaults(dest *container.Map, sources ...*container.Map) *container.Map {
	for _, src := range sources {
		for k, v := range src.All() {
			dest.SetDefault(k, v)
		}
	}
	return dest
}

// Merge recursively combines sources into dest. When both the current dest
// value and the incoming value are non-empty containers of the same family,
// they merge into a new nested container; otherwise the source value
// overwrites, later sources winning. Mutates and returns dest. Cyclic
// sources recurse without bound.
func Merge(dest *container.Map, sources ...*container.Map) *container.Map {
	return MergeWith(dest, nil, sources...)
}

// MergeWith is Merge with every conflict resolved by cb(current, incoming)
// instead of recursion.
func MergeWith(dest *container.Map, cb AssignFunc, sources ...*container.Map) *container.Map {
	for _, src := range sources {
		for k, sv := range src.All() {
			dv, _ := dest.Get(k)
			if debug.Merge() {
				debug.Logf("merge key %v: %s <- %s\n", k, debug.Dump(dv), debug.Dump(sv))
			}
			dest.Set(k, mergeValue(dv, sv, cb))
		}
	}
	return dest
}

func mergeValue(dv, sv any, cb AssignFunc) any {
	if cb != nil {
		return cb(dv, sv)
	}
	kd, ks := container.KindOf(dv), container.KindOf(sv)
	if kd != ks || container.Len(dv) == 0 || container.Len(sv) == 0 {
		return sv
	}
	switch kd {
	case container.KindMapping:
		return mergeMappings(dv, sv)
	case container.KindSequence:
		return mergeSequences(dv, sv)
	}
	return sv
}

// mergeMappings unions into a new mapping: dest order first, then new source
// keys in source order.
func mergeMappings(dv, sv any) *container.Map {
	res := container.NewMap()
	for k, v := range container.Iter(dv) {
		res.Set(k, v)
	}
	for k, v := range container.Iter(sv) {
		if old, ok := res.Get(k); ok {
			res.Set(k, mergeValue(old, v, nil))
		} else {
			res.Set(k, v)
		}
	}
	return res
}

// mergeSequences merges element-wise over the common prefix into a new
// sequence; whichever side is longer contributes its tail as-is.
func mergeSequences(dv, sv any) []any {
	var res []any
	for _, v := range container.Iter(dv) {
		res = append(res, v)
	}
	i := 0
	for _, v := range container.Iter(sv) {
		if i < len(res) {
			res[i] = mergeValue(res[i], v, nil)
		} else {
			res = append(res, v)
		}
		i++
	}
	return res
}
