package godash

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/godash/godash/container"
)

// IsNaN reports whether v is not a number by this library's IsNumber. This is
// a naming quirk kept for compatibility: it is NOT an IEEE NaN test.
// IsNaN(math.NaN()) is false, IsNaN("1") is true.
func IsNaN(v any) bool {
	return !IsNumber(v)
}

// IsZero reports interface identity with the untyped constant 0: true only
// for int(0), not for other numeric kinds holding zero. Quirk kept for
// compatibility; use IsNumber plus a comparison for value equality with zero.
func IsZero(v any) bool {
	return v == 0
}

// IsEmpty is true for every boolean and number, and otherwise true iff v is
// falsy: nil, an empty string or an empty container.
func IsEmpty(v any) bool {
	if IsBoolean(v) || IsNumber(v) {
		return true
	}
	return !container.Truth(v)
}

func IsPositive(v any) bool {
	f, ok := numValue(v)
	return ok && f > 0
}

func IsNegative(v any) bool {
	f, ok := numValue(v)
	return ok && f < 0
}

func IsEven(v any) bool {
	f, ok := numValue(v)
	return ok && math.Mod(f, 2) == 0
}

func IsOdd(v any) bool {
	f, ok := numValue(v)
	return ok && math.Mod(f, 2) != 0
}

// IsJSON reports whether v is text that parses as JSON. Never errors; any
// non-text input is simply not JSON.
func IsJSON(v any) bool {
	switch x := v.(type) {
	case string:
		return json.Valid([]byte(x))
	case []byte:
		return json.Valid(x)
	}
	return false
}

// IsMonotone reports whether every adjacent pair of value satisfies op. A
// non-sequence value is wrapped as a singleton and is trivially monotone, as
// is an empty or one-element sequence. The scan stops at the first violation.
func IsMonotone(value any, op func(a, b any) bool) bool {
	var prev any
	first := true
	for _, v := range container.Iter(wrapSequence(value)) {
		if !first && !op(prev, v) {
			return false
		}
		prev = v
		first = false
	}
	return true
}

func IsIncreasing(value any) bool {
	return IsMonotone(value, func(a, b any) bool { return ordered(a, b) <= 0 })
}

func IsStrictlyIncreasing(value any) bool {
	return IsMonotone(value, func(a, b any) bool { return ordered(a, b) < 0 })
}

func IsDecreasing(value any) bool {
	return IsMonotone(value, func(a, b any) bool { return ordered(a, b) >= 0 })
}

func IsStrictlyDecreasing(value any) bool {
	return IsMonotone(value, func(a, b any) bool { return ordered(a, b) > 0 })
}

func wrapSequence(value any) any {
	if container.IsSequence(value) {
		return value
	}
	return []any{value}
}

// ordered compares two values under the host's natural order: numbers
// cross-kind, strings lexically. Unordered pairs report +2 so that every
// monotone op fails on them.
func ordered(a, b any) int {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}
	af, aok := numValue(a)
	bf, bok := numValue(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return 2
}

func numValue(v any) (float64, bool) {
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
