package godash

import (
	"github.com/godash/godash/container"
)

// IsEqual reports structural equality of a and b using the host
// representation's own equality: mappings as unordered key/value sets,
// sequences element-wise, scalars by reflect.DeepEqual.
func IsEqual(a, b any) bool {
	return IsEqualWith(a, b, nil)
}

// IsEqualWith is IsEqual with a custom comparator. The comparator is asked
// first; a non-nil result decides (by truthiness). When it returns nil and
// both operands are containers of the same kind and length, the comparison
// recurses element-wise with the comparator: a key of a missing in b makes
// them unequal, and the walk stops at the first mismatch. In every other
// case, including no comparator at all, equality is delegated to the host
// representation's native equality; no element-wise walk happens without a
// comparator.
func IsEqualWith(a, b any, cmp func(a, b any) any) bool {
	if cmp != nil {
		if r := cmp(a, b); r != nil {
			return truthy(r)
		}
		ka, kb := container.KindOf(a), container.KindOf(b)
		if ka == kb && (ka == container.KindSequence || ka == container.KindMapping) &&
			container.Len(a) == container.Len(b) {
			for k, av := range container.Iter(a) {
				bv, ok := container.Get(b, k)
				if !ok || !IsEqualWith(av, bv, cmp) {
					return false
				}
			}
			return true
		}
	}
	return container.DeepEqual(a, b)
}
