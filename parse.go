package godash

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInt converts value to an integer in the given radix; radix 0 means
// unspecified. With no radix, a digit-led textual value that converts in
// base 16 selects radix 16. This checks convertibility, not a "0x" prefix,
// so ParseInt("10", 0) is 16; anything else uses radix 10. Numeric values
// truncate toward zero at radix 10 and are formatted then reparsed at any
// other radix. Failures report ok=false, never an error.
func ParseInt(value any, radix int) (int64, bool) {
	if radix == 0 {
		if s, ok := value.(string); ok && sniffHex(s) {
			radix = 16
		}
	}
	if radix == 0 {
		radix = 10
	}
	if radix < 2 || radix > 36 {
		return 0, false
	}
	switch v := value.(type) {
	case string:
		n, err := parseIntText(v, radix)
		if err != nil {
			return 0, false
		}
		return n, true
	case bool:
		if radix != 10 {
			return 0, false
		}
		if v {
			return 1, true
		}
		return 0, true
	}
	if !IsNumber(value) {
		return 0, false
	}
	if radix == 10 {
		return truncInt(value)
	}
	n, err := parseIntText(fmt.Sprint(value), radix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// sniffHex reports whether s converts as base 16. Number-like strings only:
// the first character after sign must be a decimal digit, so that letter
// words do not silently read as hex.
func sniffHex(s string) bool {
	t := strings.TrimSpace(s)
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	if len(t) == 0 || t[0] < '0' || t[0] > '9' {
		return false
	}
	_, err := parseIntText(s, 16)
	return err == nil
}

// parseIntText is strconv.ParseInt plus the host conversion's tolerances:
// surrounding whitespace, and a 0x/0X prefix at radix 16. The sign stays on
// the string for strconv, so a second sign is a syntax error and int64 min
// parses.
func parseIntText(s string, radix int) (int64, error) {
	s = strings.TrimSpace(s)
	if radix == 16 {
		sign, digits := "", s
		if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
			sign, digits = digits[:1], digits[1:]
		}
		if rest, ok := strings.CutPrefix(digits, "0x"); ok {
			s = sign + rest
		} else if rest, ok := strings.CutPrefix(digits, "0X"); ok {
			s = sign + rest
		}
	}
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, radix, 64)
}

func truncInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uintptr:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float32:
		return truncFloat(float64(v))
	case float64:
		return truncFloat(v)
	}
	return 0, false
}

func truncFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) ||
		f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}
