package calculator

import (
	"math"
	"strconv"
	"strings"
)

// ErrorMarker is shown on the display after an arithmetic failure.
const ErrorMarker = "Error"

const (
	// MaxDigits caps how many digits can be typed into the display.
	MaxDigits = 9

	exponentialThreshold = 1e9
	exponentialDigits    = 5
	maxPlainLength       = 10
	roundedDecimals      = 7
	smallThreshold       = 1e-6
)

// Format renders a number for the display.
//
//   - non-finite values become ErrorMarker
//   - magnitudes >= 1e9 use exponential notation with 5 fractional digits
//   - integers have no decimal point
//   - decimals longer than 10 characters are rounded to 7 places and
//     trailing zeros are stripped, unless they already render exponentially
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorMarker
	}
	if v == 0 {
		// collapses -0
		return "0"
	}
	if math.Abs(v) >= exponentialThreshold {
		return compactExponent(strconv.FormatFloat(v, 'e', exponentialDigits, 64))
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	plain := plainString(v)
	if strings.ContainsRune(plain, 'e') || len(plain) <= maxPlainLength {
		return plain
	}
	rounded := strconv.FormatFloat(v, 'f', roundedDecimals, 64)
	rounded = strings.TrimRight(rounded, "0")
	rounded = strings.TrimSuffix(rounded, ".")
	if rounded == "-0" {
		return "0"
	}
	return rounded
}

// plainString is the shortest round-tripping representation, switching to
// exponential form for very small magnitudes.
func plainString(v float64) string {
	if math.Abs(v) < smallThreshold {
		return compactExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// compactExponent rewrites Go's "1.5e+09" exponent as "1.5e+9".
func compactExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 || idx+2 > len(s) {
		return s
	}
	mantissa, sign, exp := s[:idx], s[idx+1], strings.TrimLeft(s[idx+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + string(sign) + exp
}

// parseDisplay reads the numeric value of a display string. A trailing
// decimal point ("12.") is valid input.
func parseDisplay(display string) (float64, bool) {
	if display == ErrorMarker {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(display, "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// digitCount counts the digits of a display string, ignoring the sign and
// decimal point.
func digitCount(display string) int {
	n := 0
	for i := 0; i < len(display); i++ {
		if display[i] >= '0' && display[i] <= '9' {
			n++
		}
	}
	return n
}
