package number

import (
	"fmt"
	"math"
	"math/big"
)

// risksOverflow reports whether any operand leaves the int32 range, in
// which case a product of two operands may not fit in int64.
func risksOverflow(vs ...int64) bool {
	for _, v := range vs {
		if v > math.MaxInt32 || v < math.MinInt32 {
			return true
		}
	}
	return false
}

func (x Rational) Add(y Rational) (Rational, error) {
	xd, yd := x.Den(), y.Den()
	if xd == yd {
		if risksOverflow(x.num, y.num) {
			n := new(big.Int).Add(big.NewInt(x.num), big.NewInt(y.num))
			return normalizeBig(n, big.NewInt(xd))
		}
		return normalize(x.num+y.num, xd)
	}

	if risksOverflow(x.num, xd, y.num, yd) {
		d := new(big.Int).Mul(big.NewInt(xd), big.NewInt(yd))
		v1 := new(big.Int).Mul(big.NewInt(x.num), big.NewInt(yd))
		v2 := new(big.Int).Mul(big.NewInt(xd), big.NewInt(y.num))
		return normalizeBig(v1.Add(v1, v2), d)
	}
	return normalize(x.num*yd+xd*y.num, xd*yd)
}

func (x Rational) Sub(y Rational) (Rational, error) {
	n, err := y.Neg()
	if err != nil {
		return x.subBig(y)
	}
	return x.Add(n)
}

// subBig handles a subtrahend whose negation does not fit, which can only
// happen for a numerator of math.MinInt64.
func (x Rational) subBig(y Rational) (Rational, error) {
	xd, yd := big.NewInt(x.Den()), big.NewInt(y.Den())
	v1 := new(big.Int).Mul(big.NewInt(x.num), yd)
	v2 := new(big.Int).Mul(xd, big.NewInt(y.num))
	return normalizeBig(v1.Sub(v1, v2), new(big.Int).Mul(xd, yd))
}

func (x Rational) Mul(y Rational) (Rational, error) {
	xd, yd := x.Den(), y.Den()
	if risksOverflow(x.num, y.num, xd, yd) {
		n := new(big.Int).Mul(big.NewInt(x.num), big.NewInt(y.num))
		d := new(big.Int).Mul(big.NewInt(xd), big.NewInt(yd))
		return normalizeBig(n, d)
	}
	return normalize(x.num*y.num, xd*yd)
}

func (x Rational) Div(y Rational) (Rational, error) {
	if y.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	if y.num == math.MinInt64 {
		n := new(big.Int).Mul(big.NewInt(x.num), big.NewInt(y.Den()))
		d := new(big.Int).Mul(big.NewInt(x.Den()), big.NewInt(y.num))
		return normalizeBig(n, d)
	}
	inv, err := y.Inv()
	if err != nil {
		return Rational{}, err
	}
	return x.Mul(inv)
}

// Pow multiplies One by x e times, or divides One by x -e times. Any base
// other than 0, 1 and -1 overflows within 64 steps, those three are
// answered directly.
func (x Rational) Pow(e int) (Rational, error) {
	if x.IsInteger() && x.num >= -1 && x.num <= 1 {
		switch {
		case e == 0:
			return One, nil
		case x.num == 0 && e < 0:
			return Rational{}, fmt.Errorf("pow %s^%d: %w", x, e, ErrDivisionByZero)
		case x.num == -1 && e%2 == 0:
			return One, nil
		}
		return x, nil
	}

	var err error
	r := One
	if e > 0 {
		for i := 0; i < e; i++ {
			r, err = r.Mul(x)
			if err != nil {
				return Rational{}, fmt.Errorf("pow %s^%d: %w", x, e, err)
			}
		}
		return r, nil
	}
	// uint(-e) is 2^63 for math.MinInt
	for i := uint(0); i < uint(-e); i++ {
		r, err = r.Div(x)
		if err != nil {
			return Rational{}, fmt.Errorf("pow %s^%d: %w", x, e, err)
		}
	}
	return r, nil
}

func (x Rational) Neg() (Rational, error) {
	if x.num == math.MinInt64 {
		return Rational{}, fmt.Errorf("%w: -(%s)", ErrOverflow, x)
	}
	return Rational{num: -x.num, den: x.den}, nil
}

// Inv returns the reciprocal, moving the sign to the new numerator.
func (x Rational) Inv() (Rational, error) {
	switch {
	case x.num == 0:
		return Rational{}, ErrDivisionByZero
	case x.num == math.MinInt64:
		return Rational{}, fmt.Errorf("%w: 1/(%s)", ErrOverflow, x)
	case x.num < 0:
		return mk(-x.Den(), -x.num), nil
	}
	return mk(x.Den(), x.num), nil
}

func (x Rational) Abs() (Rational, error) {
	if x.IsNegative() {
		return x.Neg()
	}
	return x, nil
}

// Max returns y unless x is strictly greater.
func (x Rational) Max(y Rational) Rational {
	if x.GreaterThan(y) {
		return x
	}
	return y
}

// Min returns y unless x is strictly less.
func (x Rational) Min(y Rational) Rational {
	if x.LessThan(y) {
		return x
	}
	return y
}
