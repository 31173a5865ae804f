package godash

import (
	"iter"

	"github.com/godash/godash/container"
)

// called is one step of callback-driven iteration.
type called struct {
	result any
	value  any
	key    any
}

// callIter runs the normalized callback over obj's pairs, lazily. Breaking
// out of the range stops iteration immediately; consumers that honor the
// early-exit protocol break on an exact false result.
func callIter(obj, spec any, reverse bool) iter.Seq[called] {
	cb := normalize(spec)
	pairs := container.Iter(obj)
	if reverse {
		pairs = container.IterReverse(obj)
	}
	return func(yield func(called) bool) {
		for k, v := range pairs {
			if !yield(called{result: cb(v, k, obj), value: v, key: k}) {
				return
			}
		}
	}
}
