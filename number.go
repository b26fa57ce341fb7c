// number.go: the numeric scalar used throughout the calculator.
//
// A Number is either exact (an arbitrary-precision rational, covering the
// integer and `a/b` fraction literals) or floating (covering `a.b` decimal
// literals and every result of a trigonometric or norm computation).
// Arithmetic between two exact numbers stays exact; anything touching a
// float widens to float64. Division by zero never panics: it degrades to a
// floating NaN, which downstream code treats as a meaningful "degenerate"
// result rather than a failure.
package spacevectors

import (
	"math"
	"math/big"
)

// Number is an exact-or-floating scalar.
type Number struct {
	exact bool
	rat   *big.Rat // set iff exact
	f     float64  // set iff !exact
}

// IntNum returns the exact integer n.
func IntNum(n int64) Number {
	return Number{exact: true, rat: new(big.Rat).SetInt64(n)}
}

// RatNum returns the exact rational num/den. A zero denominator degrades to
// a floating NaN (big.Rat would panic on it).
func RatNum(num, den int64) Number {
	if den == 0 {
		return FloatNum(math.NaN())
	}
	return Number{exact: true, rat: big.NewRat(num, den)}
}

// FloatNum returns the floating-point number f.
func FloatNum(f float64) Number {
	return Number{f: f}
}

// Exact reports whether n carries an exact rational value.
func (n Number) Exact() bool { return n.exact }

// Float returns the value as a float64, rounding exact rationals.
func (n Number) Float() float64 {
	if n.exact {
		f, _ := n.rat.Float64()
		return f
	}
	return n.f
}

// IsZero reports whether n is exactly zero. NaN is not zero.
func (n Number) IsZero() bool {
	if n.exact {
		return n.rat.Sign() == 0
	}
	return n.f == 0
}

// Sign returns -1, 0, or +1. For a floating NaN it returns 0.
func (n Number) Sign() int {
	if n.exact {
		return n.rat.Sign()
	}
	switch {
	case n.f > 0:
		return 1
	case n.f < 0:
		return -1
	default:
		return 0
	}
}

// Equal reports value equality. Exact numbers compare exactly; once a float
// is involved both sides compare as float64 (so NaN != NaN).
func (n Number) Equal(m Number) bool {
	if n.exact && m.exact {
		return n.rat.Cmp(m.rat) == 0
	}
	return n.Float() == m.Float()
}

func (n Number) Add(m Number) Number {
	if n.exact && m.exact {
		return Number{exact: true, rat: new(big.Rat).Add(n.rat, m.rat)}
	}
	return FloatNum(n.Float() + m.Float())
}

func (n Number) Sub(m Number) Number {
	if n.exact && m.exact {
		return Number{exact: true, rat: new(big.Rat).Sub(n.rat, m.rat)}
	}
	return FloatNum(n.Float() - m.Float())
}

func (n Number) Mul(m Number) Number {
	if n.exact && m.exact {
		return Number{exact: true, rat: new(big.Rat).Mul(n.rat, m.rat)}
	}
	return FloatNum(n.Float() * m.Float())
}

// Div divides n by m. Division by an exact zero yields a floating NaN;
// division by a floating zero follows IEEE semantics (±Inf or NaN).
func (n Number) Div(m Number) Number {
	if n.exact && m.exact {
		if m.rat.Sign() == 0 {
			return FloatNum(math.NaN())
		}
		return Number{exact: true, rat: new(big.Rat).Quo(n.rat, m.rat)}
	}
	return FloatNum(n.Float() / m.Float())
}

func (n Number) Neg() Number {
	if n.exact {
		return Number{exact: true, rat: new(big.Rat).Neg(n.rat)}
	}
	return FloatNum(-n.f)
}

// Abs returns the absolute value.
func (n Number) Abs() Number {
	if n.exact {
		return Number{exact: true, rat: new(big.Rat).Abs(n.rat)}
	}
	return FloatNum(math.Abs(n.f))
}

// IsNaN reports whether n is a floating NaN.
func (n Number) IsNaN() bool {
	return !n.exact && math.IsNaN(n.f)
}

// String renders the number the way the printer does: exact integers bare,
// exact fractions as "a/b", floats in Go's shortest 'g' form.
func (n Number) String() string {
	return formatNumber(n)
}
