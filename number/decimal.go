package number

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

type RoundingMode int

const (
	HalfEven RoundingMode = iota
	HalfUp
	HalfDown
	Up
	Down
	Ceiling
	Floor
)

var roundingModeNames = []string{
	HalfEven: "HALF_EVEN",
	HalfUp:   "HALF_UP",
	HalfDown: "HALF_DOWN",
	Up:       "UP",
	Down:     "DOWN",
	Ceiling:  "CEILING",
	Floor:    "FLOOR",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return roundingModeNames[m]
}

func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	for m, n := range roundingModeNames {
		if n == name {
			return RoundingMode(m), nil
		}
	}
	return HalfEven, fmt.Errorf("%w: rounding mode %q", ErrMalformed, s)
}

// FromDecimal returns the exact fraction coefficient * 10^exponent.
func FromDecimal(d decimal.Decimal) (Rational, error) {
	n := d.Coefficient()
	if n.Sign() == 0 {
		return Zero, nil
	}
	exp := d.Exponent()
	if exp > 18 {
		return Rational{}, fmt.Errorf("%w: %s", ErrOverflow, d)
	}
	if exp < 0 && int(-exp) > len(n.String())+19 {
		return Rational{}, fmt.Errorf("%w: %s", ErrOverflow, d)
	}
	den := big.NewInt(1)
	if exp > 0 {
		n.Mul(n, pow10(exp))
	} else if exp < 0 {
		den = pow10(-exp)
	}
	return normalizeBig(n, den)
}

// FromFloat is not exact. The float is first turned into the shortest
// decimal that reads back as the same float64, so FromFloat(0.1) is 1/10
// and not the binary value actually stored.
func FromFloat(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("%w: %v", ErrMalformed, f)
	}
	return FromDecimal(decimal.NewFromFloat(f))
}

// Decimal divides numerator by denominator and rounds the quotient to
// scale fractional digits. A negative scale rounds to a multiple of
// 10^-scale.
func (x Rational) Decimal(scale int32, mode RoundingMode) decimal.Decimal {
	n, d := big.NewInt(x.num), big.NewInt(x.Den())
	if scale > 0 {
		n.Mul(n, pow10(scale))
	} else if scale < 0 {
		d.Mul(d, pow10(-scale))
	}
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() != 0 && roundsAway(q, r, d, n.Sign() < 0, mode) {
		if n.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return decimal.NewFromBigInt(q, -scale)
}

// roundsAway decides whether the truncated quotient q, with the non-zero
// remainder r of a division by d, moves one unit away from zero.
func roundsAway(q, r, d *big.Int, negative bool, mode RoundingMode) bool {
	switch mode {
	case Up:
		return true
	case Down:
		return false
	case Ceiling:
		return !negative
	case Floor:
		return negative
	}

	half := new(big.Int).Abs(r)
	switch half.Lsh(half, 1).Cmp(d) {
	case 1:
		return true
	case -1:
		return false
	}
	switch mode {
	case HalfUp:
		return true
	case HalfDown:
		return false
	}
	return q.Bit(0) == 1
}

// Round rounds x to scale fractional digits through its decimal form.
func (x Rational) Round(scale int32, mode RoundingMode) (Rational, error) {
	return FromDecimal(x.Decimal(scale, mode))
}

// ExactDecimal fails with ErrNonTerminating unless the denominator has no
// prime factors other than 2 and 5.
func (x Rational) ExactDecimal() (decimal.Decimal, error) {
	d := x.Den()
	var twos, fives int32
	for d%2 == 0 {
		d /= 2
		twos++
	}
	for d%5 == 0 {
		d /= 5
		fives++
	}
	if d != 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrNonTerminating, x)
	}
	if fives > twos {
		twos = fives
	}
	return x.Decimal(twos, Down), nil
}

// DecimalString renders x with exactly scale fractional digits.
func (x Rational) DecimalString(scale int32, mode RoundingMode) string {
	d := x.Decimal(scale, mode)
	if scale <= 0 {
		return d.String()
	}
	return d.StringFixed(scale)
}

func pow10(e int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
}
