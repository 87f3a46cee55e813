// Package number implements Rational, an exact fraction over the int64
// range that is always kept in lowest terms with a positive denominator.
//
// Arithmetic runs on int64 while the operands are small enough for the
// products to fit, and switches to math/big otherwise. The reduced result
// must fit back into int64, or the operation fails with ErrOverflow.
package number

import (
	"strconv"
)

// Rational is an immutable value. The denominator is stored biased by one,
// so the zero value of the struct is the canonical zero 0/1, and two
// Rationals are equal exactly when == reports so.
type Rational struct {
	num int64
	den int64
}

var (
	Zero = Rational{}
	One  = Rational{num: 1}
)

func mk(num, den int64) Rational {
	return Rational{num: num, den: den - 1}
}

// New returns num/den reduced to lowest terms.
func New(num, den int64) (Rational, error) {
	return normalize(num, den)
}

// Must panics if err is not nil, e.g. Must(New(1, 3)).
func Must(r Rational, err error) Rational {
	if err != nil {
		panic(err)
	}
	return r
}

func FromInt(v int64) Rational {
	return Rational{num: v}
}

func (x Rational) Num() int64 {
	return x.num
}

func (x Rational) Den() int64 {
	return x.den + 1
}

func (x Rational) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	}
	return 0
}

func (x Rational) IsZero() bool {
	return x.num == 0
}

func (x Rational) IsPositive() bool {
	return x.num > 0
}

func (x Rational) IsNegative() bool {
	return x.num < 0
}

func (x Rational) IsInteger() bool {
	return x.den == 0
}

// Int64 truncates toward zero.
func (x Rational) Int64() int64 {
	return x.num / x.Den()
}

// Int32 truncates toward zero and keeps the low 32 bits.
func (x Rational) Int32() int32 {
	return int32(x.Int64())
}

func (x Rational) Float64() float64 {
	return float64(x.num) / float64(x.Den())
}

func (x Rational) Float32() float32 {
	return float32(x.Float64())
}

// String renders integers plainly and everything else as "num/den".
func (x Rational) String() string {
	if x.IsInteger() {
		return strconv.FormatInt(x.num, 10)
	}
	return strconv.FormatInt(x.num, 10) + "/" + strconv.FormatInt(x.Den(), 10)
}
