package domain

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Fraction is an exact rational number n/d.
// The denominator is never zero and always positive; NewFraction moves the sign
// onto the numerator so cross-multiplied orderings stay correct.
type Fraction struct {
	num int64
	den int64
}

// NewFraction builds n/d. A zero denominator is rejected, and so is math.MinInt64
// in either position because its sign cannot be flipped.
func NewFraction(n, d int64) (Fraction, error) {
	if d == 0 {
		return Fraction{}, invalidArgument("fraction.new", "zero denominator in %d/%d", n, d)
	}
	if n == math.MinInt64 || d == math.MinInt64 {
		return Fraction{}, invalidArgument("fraction.new", "%d/%d is out of range", n, d)
	}
	if d < 0 {
		n, d = -n, -d
	}
	return Fraction{num: n, den: d}, nil
}

// MustFraction is NewFraction for literals; it panics on a zero denominator.
func MustFraction(n, d int64) Fraction {
	f, err := NewFraction(n, d)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseFraction accepts "n/d" or a bare integer "n".
func ParseFraction(s string) (Fraction, error) {
	in := strings.TrimSpace(s)
	numPart, denPart, hasSlash := strings.Cut(in, "/")
	if !hasSlash {
		denPart = "1"
	}

	n, err := strconv.ParseInt(strings.TrimSpace(numPart), 10, 64)
	if err != nil {
		return Fraction{}, invalidArgument("fraction.parse", "bad numerator in %q", s)
	}
	d, err := strconv.ParseInt(strings.TrimSpace(denPart), 10, 64)
	if err != nil {
		return Fraction{}, invalidArgument("fraction.parse", "bad denominator in %q", s)
	}
	return NewFraction(n, d)
}

func (f Fraction) Num() int64 { return f.num }
func (f Fraction) Den() int64 { return f.den }

// Float64 converts to the nearest float.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.den)
}

func (f Fraction) Negate() Fraction {
	return Fraction{num: -f.num, den: f.den}
}

// Reciprocal swaps numerator and denominator. 0/d has no reciprocal.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, invalidArgument("fraction.reciprocal", "zero has no reciprocal")
	}
	return NewFraction(f.den, f.num)
}

// Simplify divides out the greatest common divisor.
func (f Fraction) Simplify() Fraction {
	g := GCD(f.num, f.den)
	if g == 0 {
		return f
	}
	return Fraction{num: f.num / g, den: f.den / g}
}

// Compare returns -1, 0 or 1 as f is less than, equal to or greater than g.
// The cross products are taken in 128 bits so large terms cannot wrap.
func (f Fraction) Compare(g Fraction) int {
	ls, rs := sign64(f.num), sign64(g.num)
	if ls != rs {
		return cmpInt(ls, rs)
	}
	if ls == 0 {
		return 0
	}

	lhi, llo := bits.Mul64(uint64(abs64(f.num)), uint64(g.den))
	rhi, rlo := bits.Mul64(uint64(abs64(g.num)), uint64(f.den))

	order := cmpUint(lhi, rhi)
	if order == 0 {
		order = cmpUint(llo, rlo)
	}
	// Both negative: the larger magnitude is the smaller value.
	return order * ls
}

func (f Fraction) Equal(g Fraction) bool          { return f.Compare(g) == 0 }
func (f Fraction) NotEqual(g Fraction) bool       { return f.Compare(g) != 0 }
func (f Fraction) Less(g Fraction) bool           { return f.Compare(g) < 0 }
func (f Fraction) LessOrEqual(g Fraction) bool    { return f.Compare(g) <= 0 }
func (f Fraction) Greater(g Fraction) bool        { return f.Compare(g) > 0 }
func (f Fraction) GreaterOrEqual(g Fraction) bool { return f.Compare(g) >= 0 }

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// GCD is the non-negative greatest common divisor; GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM is the non-negative least common multiple; 0 if either argument is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return abs64(a / GCD(a, b) * b)
}

func sign64(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
