package godash

import (
	"math"
	"testing"
)

type parseIntTest struct {
	in    any
	radix int
	want  int64
	ok    bool
}

var parseIntTests = []parseIntTest{
	{"10", 10, 10, true},
	{"10", 2, 2, true},
	{"10", 8, 8, true},
	{" 42 ", 10, 42, true},
	{"-7", 10, -7, true},
	{"+7", 10, 7, true},
	{"--10", 10, 0, false},
	{"+-7", 10, 0, false},
	{"--10", 16, 0, false},
	{"-9223372036854775808", 10, math.MinInt64, true},
	{"9223372036854775808", 10, 0, false},
	{"-0xFF", 16, -255, true},
	{"0xFF", 0, 255, true},
	{"0xff", 16, 255, true},
	{"ff", 16, 255, true},
	// Radix sniffing checks base-16 convertibility, not a 0x prefix.
	{"10", 0, 16, true},
	{"42", 0, 66, true},
	// Letter-led strings never sniff as hex.
	{"abc", 0, 0, false},
	{"abc", 16, 2748, true},
	{"", 10, 0, false},
	{"3.5", 10, 0, false},
	{"12", 1, 0, false},
	{"1", 37, 0, false},
	{1.9, 10, 1, true},
	{-1.9, 10, -1, true},
	{4.0, 10, 4, true},
	{math.NaN(), 10, 0, false},
	{math.Inf(1), 10, 0, false},
	{10, 16, 16, true},
	{int64(255), 10, 255, true},
	{true, 10, 1, true},
	{false, 10, 0, true},
	{true, 16, 0, false},
	{nil, 10, 0, false},
	{[]any{1}, 10, 0, false},
}

func TestParseInt(t *testing.T) {
	for _, pt := range parseIntTests {
		got, ok := ParseInt(pt.in, pt.radix)
		if ok != pt.ok || got != pt.want {
			t.Errorf("ParseInt(%v, %d): got %d, %t want %d, %t",
				pt.in, pt.radix, got, ok, pt.want, pt.ok)
		}
	}
}
