// Package rational provides the exact fraction type used for durations and
// positions measured in whole notes.
package rational

import (
	"fmt"
	"strconv"
	"strings"
)

// Rational is a normalized fraction. The denominator is always positive and
// the zero value is 0/1.
type Rational struct {
	num int64
	den int64
}

// Zero is 0/1.
var Zero = Rational{0, 1}

// One is 1/1.
var One = Rational{1, 1}

// New returns num/den in lowest terms. It panics when den is zero, like
// integer division does.
func New(num, den int64) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Rational{num, den}
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{n, 1}
}

// Parse reads "n" or "n/d".
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, found := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid rational %q: %w", s, err)
	}
	if !found {
		return FromInt(num), nil
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid rational %q: %w", s, err)
	}
	if den == 0 {
		return Zero, fmt.Errorf("invalid rational %q: zero denominator", s)
	}
	return New(num, den), nil
}

func (r Rational) norm() Rational {
	if r.den == 0 {
		return Zero
	}
	return r
}

// Num returns the numerator.
func (r Rational) Num() int64 { return r.norm().num }

// Den returns the denominator.
func (r Rational) Den() int64 { return r.norm().den }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	r, o = r.norm(), o.norm()
	return New(r.num*o.den+o.num*r.den, r.den*o.den)
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	r, o = r.norm(), o.norm()
	return New(r.num*o.den-o.num*r.den, r.den*o.den)
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	r, o = r.norm(), o.norm()
	return New(r.num*o.num, r.den*o.den)
}

// MulInt returns r * n.
func (r Rational) MulInt(n int64) Rational {
	r = r.norm()
	return New(r.num*n, r.den)
}

// DivInt returns r / n.
func (r Rational) DivInt(n int64) Rational {
	r = r.norm()
	return New(r.num, r.den*n)
}

// Cmp returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	r, o = r.norm(), o.norm()
	a, b := r.num*o.den, o.num*r.den
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r == o.
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.norm().num == 0 }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch n := r.norm().num; {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Float returns an approximation of r.
func (r Rational) Float() float64 {
	r = r.norm()
	return float64(r.num) / float64(r.den)
}

// String formats r as "n/d", or "n" when d is 1.
func (r Rational) String() string {
	r = r.norm()
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
