// Package numfmt implements the external numeric-formatter contract of
// spec.md §2 component 5: given a finite float64, produce the shortest
// JS-compatible decimal literal that round-trips back to the same value.
//
// Grounded on the teacher's evaluator.floatToString: strconv already picks
// the shortest round-tripping digit sequence (FormatFloat with prec -1); the
// remaining work is choosing between fixed and exponential notation at the
// same thresholds ECMA-262 9.8.1 uses, and trimming the leading zero that
// Go's 'g' verb leaves in small exponents (1e-07 instead of 1e-7).
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Format renders value as a finite JS numeric literal. The caller is
// responsible for ensuring value is finite (§7 PayloadOutOfRange): NaN and
// ±Infinity have no literal form and must be represented as an expression
// such as 0/0 or 1/0 instead.
func Format(value float64) string {
	if value == 0 {
		// -0 prints as "0"; the sign is only visible via Unary(-) wrapping.
		return "0"
	}

	exponent := math.Log10(math.Abs(value))
	if exponent >= 21 || exponent < -6 {
		s := strconv.FormatFloat(value, 'g', -1, 64)
		return trimExponentZero(s)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// trimExponentZero turns Go's "1e-07" into JS's "1e-7".
func trimExponentZero(s string) string {
	idx := strings.IndexAny(s, "eE")
	if idx < 0 {
		return s
	}
	mantissa, exp := s[:idx+1], s[idx+1:]
	sign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign, exp = exp[:1], exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + sign + exp
}
