package number

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func (x Rational) AddInt(y int64) (Rational, error) {
	return x.Add(FromInt(y))
}

func (x Rational) SubInt(y int64) (Rational, error) {
	return x.Sub(FromInt(y))
}

func (x Rational) MulInt(y int64) (Rational, error) {
	return x.Mul(FromInt(y))
}

func (x Rational) DivInt(y int64) (Rational, error) {
	return x.Div(FromInt(y))
}

func (x Rational) AddDecimal(y decimal.Decimal) (Rational, error) {
	r, err := FromDecimal(y)
	if err != nil {
		return Rational{}, err
	}
	return x.Add(r)
}

func (x Rational) SubDecimal(y decimal.Decimal) (Rational, error) {
	r, err := FromDecimal(y)
	if err != nil {
		return Rational{}, err
	}
	return x.Sub(r)
}

func (x Rational) MulDecimal(y decimal.Decimal) (Rational, error) {
	r, err := FromDecimal(y)
	if err != nil {
		return Rational{}, err
	}
	return x.Mul(r)
}

func (x Rational) DivDecimal(y decimal.Decimal) (Rational, error) {
	r, err := FromDecimal(y)
	if err != nil {
		return Rational{}, err
	}
	return x.Div(r)
}

// Parse reads "a" or "a/b", where a and b are decimal literals such as
// "-3", "1.25" or "1e3".
func Parse(s string) (Rational, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	switch len(parts) {
	case 1:
		return parseDecimal(parts[0])
	case 2:
		n, err := parseDecimal(parts[0])
		if err != nil {
			return Rational{}, err
		}
		d, err := parseDecimal(parts[1])
		if err != nil {
			return Rational{}, err
		}
		return n.Div(d)
	}
	return Rational{}, fmt.Errorf("%w: %q", ErrMalformed, s)
}

func parseDecimal(s string) (Rational, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}
	return FromDecimal(d)
}
