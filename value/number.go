/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"math"
	"strconv"
	"strings"
)

// Number is PDF's single numeric type: a fixed-point decimal represented as
// a mantissa/exponent pair, per spec.md §9's guidance that floating-point is
// unsuitable because byte-exact text forms matter (e.g. for signed
// documents). The value is mantissa * 10^exp.
type Number struct {
	Mantissa int64
	Exp      int8
}

// IntNumber builds a Number holding the exact integer v.
func IntNumber(v int64) Number {
	return Number{Mantissa: v, Exp: 0}
}

// FloatNumber builds a Number approximating v, choosing the shortest decimal
// text form that round-trips through strconv, as PDF writers commonly do
// for computed reals.
func FloatNumber(v float64) Number {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return parseDecimalLiteral(s)
}

// parseDecimalLiteral converts a decimal literal (as produced by the
// tokenizer or by FloatNumber) into a mantissa/exponent pair.
func parseDecimalLiteral(s string) Number {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	digits := intPart + fracPart
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	mantissa, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Overflow: clamp to the nearest representable magnitude rather than
		// fail outright; PDF numeric overflow is not one of spec.md's error
		// kinds for value construction.
		if neg {
			mantissa = math.MinInt64
		} else {
			mantissa = math.MaxInt64
		}
	}
	if neg {
		mantissa = -mantissa
	}
	return Number{Mantissa: mantissa, Exp: int8(-len(fracPart))}
}

// IsInteger reports whether n's fractional part is zero, i.e. it must be
// emitted without a decimal point per spec.md §4.1. A negative Exp whose
// mantissa is an exact multiple of 10^-Exp (e.g. "20.0") is still integral
// even though the literal carried a decimal point.
func (n Number) IsInteger() bool {
	if n.Exp >= 0 {
		return true
	}
	return n.Mantissa%pow10(-n.Exp) == 0
}

// Int64 returns n truncated to an int64, valid when IsInteger is true.
func (n Number) Int64() int64 {
	if n.Exp >= 0 {
		v := n.Mantissa
		for i := int8(0); i < n.Exp; i++ {
			v *= 10
		}
		return v
	}
	return n.Mantissa / pow10(-n.Exp)
}

func pow10(e int8) int64 {
	v := int64(1)
	for i := int8(0); i < e; i++ {
		v *= 10
	}
	return v
}

// Float64 returns n converted to a float64, lossy for very large mantissas.
func (n Number) Float64() float64 {
	return float64(n.Mantissa) * math.Pow10(int(n.Exp))
}

// Text renders n in PDF's numeric token form: no decimal point for integral
// values, otherwise the mantissa's digits with the decimal point placed by
// Exp; trailing fractional zeros are kept (e.g. "20.50").
func (n Number) Text() string {
	if n.IsInteger() {
		return strconv.FormatInt(n.Int64(), 10)
	}
	neg := n.Mantissa < 0
	m := n.Mantissa
	if neg {
		m = -m
	}
	digits := strconv.FormatInt(m, 10)
	fracLen := int(-n.Exp)
	for len(digits) <= fracLen {
		digits = "0" + digits
	}
	intDigits := digits[:len(digits)-fracLen]
	fracDigits := digits[len(digits)-fracLen:]
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(intDigits)
	sb.WriteByte('.')
	sb.WriteString(fracDigits)
	return sb.String()
}

// Equal reports structural equality between two Numbers: same numeric value
// regardless of trailing-zero exponent differences.
func (n Number) Equal(o Number) bool {
	return n.Float64() == o.Float64()
}
