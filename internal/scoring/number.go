package scoring

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeNumber parses a short answer leniently. A comma is accepted as
// the decimal separator and surrounding whitespace is ignored. Empty input
// and non-finite values do not parse.
func NormalizeNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// NumbersEqual reports whether two answers parse to numbers closer than
// Tolerance.
func NumbersEqual(a, b string) bool {
	x, ok := NormalizeNumber(a)
	if !ok {
		return false
	}
	y, ok := NormalizeNumber(b)
	if !ok {
		return false
	}
	return math.Abs(x-y) < Tolerance
}
