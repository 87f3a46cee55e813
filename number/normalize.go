package number

import (
	"fmt"
	"math"
	"math/big"
)

var bigOne = big.NewInt(1)

func normalize(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, ErrDivisionByZero
	}
	if n == 0 {
		return Zero, nil
	}
	if d < 0 {
		if n == math.MinInt64 || d == math.MinInt64 {
			return normalizeBig(big.NewInt(n), big.NewInt(d))
		}
		n, d = -n, -d
	}
	if d != 1 {
		g := gcd(magnitude(n), uint64(d))
		if g > 1 {
			n /= int64(g)
			d /= int64(g)
		}
	}
	return mk(n, d), nil
}

// normalizeBig reduces n/d in place and narrows the result to int64.
func normalizeBig(n, d *big.Int) (Rational, error) {
	if d.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	if n.Sign() == 0 {
		return Zero, nil
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(bigOne) > 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	if !n.IsInt64() || !d.IsInt64() {
		return Rational{}, fmt.Errorf("%w: %s/%s", ErrOverflow, n, d)
	}
	return mk(n.Int64(), d.Int64()), nil
}

// GCD returns the greatest common divisor of |p| and |q|, with GCD(p, 0) = |p|.
// The result is unsigned because GCD(math.MinInt64, 0) is 2^63.
func GCD(p, q int64) uint64 {
	return gcd(magnitude(p), magnitude(q))
}

func gcd(p, q uint64) uint64 {
	for q != 0 {
		p, q = q, p%q
	}
	return p
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(^v) + 1
	}
	return uint64(v)
}
