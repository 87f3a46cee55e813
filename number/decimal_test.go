package number

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFromFloat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Must(New(1, 20)), Must(FromFloat(0.05)))
	assert.Equal(Must(New(5267289, 500000)), Must(FromFloat(10.534578)))
	assert.Equal(Must(New(5267289, 500000)), Must(FromFloat(5267289.0/500000.0)))
	assert.Equal(Must(New(1, 10)), Must(FromFloat(0.1)))
	assert.Equal(FromInt(-97700), Must(FromFloat(-97700)))
	assert.Equal(Zero, Must(FromFloat(0)))

	_, err := FromFloat(math.NaN())
	assert.True(errors.Is(err, ErrMalformed))
	_, err = FromFloat(math.Inf(-1))
	assert.True(errors.Is(err, ErrMalformed))
	_, err = FromFloat(1e300)
	assert.True(errors.Is(err, ErrOverflow))
}

func TestFromDecimal(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Must(New(5, 4)), Must(FromDecimal(decimal.New(125, -2))))
	assert.Equal(FromInt(12000), Must(FromDecimal(decimal.New(12, 3))))
	assert.Equal(Zero, Must(FromDecimal(decimal.Decimal{})))
	assert.Equal(Zero, Must(FromDecimal(decimal.New(0, 40))))
	assert.Equal(FromInt(1), Must(FromDecimal(decimal.RequireFromString("1.000000000000000000000000000000"))))

	_, err := FromDecimal(decimal.New(1, 19))
	assert.True(errors.Is(err, ErrOverflow))
	_, err = FromDecimal(decimal.New(1, -19))
	assert.True(errors.Is(err, ErrOverflow))
	_, err = FromDecimal(decimal.New(1, -400))
	assert.True(errors.Is(err, ErrOverflow))
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(FromInt(-3), Must(Parse("-3")))
	assert.Equal(Must(New(5, 4)), Must(Parse(" 1.25 ")))
	assert.Equal(FromInt(1000), Must(Parse("1e3")))
	assert.Equal(Must(New(3, 4)), Must(Parse("1.5/2")))
	assert.Equal(Must(New(-10, 3)), Must(Parse("10 / -3")))
	assert.Equal(Must(New(123456, 7)), Must(Parse("123456/7")))

	for _, s := range []string{"", "abc", "1/2/3", "1/", "/2", "1.2.3", "0x10"} {
		_, err := Parse(s)
		assert.True(errors.Is(err, ErrMalformed), s)
	}
	_, err := Parse("1/0")
	assert.True(errors.Is(err, ErrDivisionByZero))
	_, err = Parse("99999999999999999999")
	assert.True(errors.Is(err, ErrOverflow))
}

func TestRoundingMode(t *testing.T) {
	assert := assert.New(t)

	for _, m := range []RoundingMode{HalfEven, HalfUp, HalfDown, Up, Down, Ceiling, Floor} {
		p, err := ParseRoundingMode(m.String())
		assert.Nil(err)
		assert.Equal(m, p)
	}
	m, err := ParseRoundingMode("half-up")
	assert.Nil(err)
	assert.Equal(HalfUp, m)
	_, err = ParseRoundingMode("nearest")
	assert.True(errors.Is(err, ErrMalformed))
	assert.Equal("RoundingMode(9)", RoundingMode(9).String())
}

func TestRound(t *testing.T) {
	assert := assert.New(t)

	pi := Must(FromFloat(3.1415926))
	assert.Equal(Must(FromFloat(3.33)), Must(Must(New(10, 3)).Round(2, HalfEven)))
	assert.Equal(Must(FromFloat(3.142)), Must(pi.Round(3, HalfEven)))
	assert.Equal(Must(FromFloat(3.142)), Must(pi.Round(3, HalfDown)))
	assert.Equal(Must(FromFloat(3.141)), Must(pi.Round(3, Down)))
	assert.Equal(Must(FromFloat(3.142)), Must(Must(FromFloat(3.1411)).Round(3, Up)))
	assert.Equal(Must(FromFloat(3.142)), Must(pi.Round(3, HalfUp)))

	v := Must(FromFloat(97652.15))
	assert.Equal(v, Must(v.Round(7, HalfEven)))
	assert.Equal(FromInt(97700), Must(v.Round(-2, HalfEven)))
	assert.Equal(FromInt(97600), Must(v.Round(-2, Down)))
	assert.Equal(FromInt(100000), Must(v.Round(-5, HalfUp)))
	assert.Equal(Zero, Must(v.Round(-6, HalfUp)))

	cases := []struct {
		value string
		mode  RoundingMode
		want  string
	}{
		{"5.5", HalfEven, "6"}, {"2.5", HalfEven, "2"}, {"1.6", HalfEven, "2"},
		{"1.1", HalfEven, "1"}, {"-2.5", HalfEven, "-2"}, {"-5.5", HalfEven, "-6"},
		{"5.5", HalfUp, "6"}, {"2.5", HalfUp, "3"}, {"-2.5", HalfUp, "-3"}, {"1.1", HalfUp, "1"},
		{"5.5", HalfDown, "5"}, {"2.5", HalfDown, "2"}, {"-2.5", HalfDown, "-2"}, {"1.6", HalfDown, "2"},
		{"5.5", Up, "6"}, {"1.1", Up, "2"}, {"-1.1", Up, "-2"}, {"1.0", Up, "1"},
		{"5.5", Down, "5"}, {"-1.6", Down, "-1"},
		{"1.1", Ceiling, "2"}, {"-1.1", Ceiling, "-1"},
		{"1.1", Floor, "1"}, {"-1.1", Floor, "-2"},
	}
	for _, c := range cases {
		r := Must(Parse(c.value))
		assert.Equal(c.want, r.DecimalString(0, c.mode), "%s %s", c.value, c.mode)
	}
}

func TestDecimalString(t *testing.T) {
	assert := assert.New(t)

	third := Must(New(1, 3))
	assert.Equal("0.33333333", third.DecimalString(8, HalfEven))
	assert.Equal("0.33333334", third.DecimalString(8, Up))
	assert.Equal("-0.66666667", Must(New(-2, 3)).DecimalString(8, HalfEven))
	assert.Equal("2.50", Must(New(5, 2)).DecimalString(2, HalfEven))
	assert.Equal("97700", Must(FromFloat(97652.15)).DecimalString(-2, HalfEven))
	assert.Equal("9223372036854775807.000", FromInt(math.MaxInt64).DecimalString(3, Down))
	assert.Equal("0.000", Zero.DecimalString(3, Down))
}

func TestExactDecimal(t *testing.T) {
	assert := assert.New(t)

	d, err := Must(New(1, 8)).ExactDecimal()
	assert.Nil(err)
	assert.Equal("0.125", d.String())
	d, err = Must(New(5267289, 500000)).ExactDecimal()
	assert.Nil(err)
	assert.Equal("10.534578", d.String())
	d, err = Must(New(-7, 1)).ExactDecimal()
	assert.Nil(err)
	assert.Equal("-7", d.String())
	d, err = Must(New(1, 1<<62)).ExactDecimal()
	assert.Nil(err)
	assert.Equal(int32(-62), d.Exponent())
	assert.True(d.Mul(decimal.New(1<<62, 0)).Equal(decimal.New(1, 0)))

	_, err = Must(New(1, 3)).ExactDecimal()
	assert.True(errors.Is(err, ErrNonTerminating))
	_, err = Must(New(7, 30)).ExactDecimal()
	assert.True(errors.Is(err, ErrNonTerminating))
}

type decimalOperation int

const (
	operationAdd decimalOperation = iota
	operationSub
	operationMul
	operationDiv
)

// TestDecimalCrossCheck compares the four operations against shopspring
// decimal on grids of two digit values between 0.00 and 100.00 and of
// three digit values between 0.000 and 10.000. Every value of the lower
// end is kept, the rest of the grid is sampled more sparsely with -short.
func TestDecimalCrossCheck(t *testing.T) {
	step := 7
	if testing.Short() {
		step = 97
	}
	grids := [][]decimal.Decimal{
		decimalGrid(100_00, -2, step),
		decimalGrid(10_000, -3, step),
	}

	var g errgroup.Group
	for _, numbers := range grids {
		numbers := numbers
		for _, op := range []decimalOperation{operationAdd, operationSub, operationMul, operationDiv} {
			op := op
			g.Go(func() error {
				return crossCheck(numbers, op)
			})
		}
	}
	require.NoError(t, g.Wait())
}

// decimalGrid returns i * 10^exp for every i up to 100, then every step
// up to max, and max itself.
func decimalGrid(max, exp int32, step int) []decimal.Decimal {
	var numbers []decimal.Decimal
	for i := 0; i <= int(max); i++ {
		if i > 100 && i%step != 0 && i != int(max) {
			continue
		}
		numbers = append(numbers, decimal.New(int64(i), exp))
	}
	return numbers
}

func TestDecimalGrid(t *testing.T) {
	require := require.New(t)

	numbers := decimalGrid(1000, -3, 300)
	require.Len(numbers, 101+3+1)
	require.True(numbers[1].Equal(decimal.RequireFromString("0.001")))
	require.True(numbers[101].Equal(decimal.RequireFromString("0.3")))
	require.True(numbers[104].Equal(decimal.New(1, 0)))
}

func crossCheck(numbers []decimal.Decimal, op decimalOperation) error {
	for _, a := range numbers {
		x, err := FromDecimal(a)
		if err != nil {
			return err
		}
		for _, b := range numbers {
			var expected decimal.Decimal
			var actual Rational
			switch op {
			case operationAdd:
				expected = a.Add(b)
				actual, err = x.AddDecimal(b)
			case operationSub:
				expected = a.Sub(b)
				actual, err = x.SubDecimal(b)
			case operationMul:
				expected = a.Mul(b)
				actual, err = x.MulDecimal(b)
			case operationDiv:
				if b.IsZero() {
					continue
				}
				expected = a.DivRound(b, 16)
				actual, err = x.DivDecimal(b)
			}
			if err != nil {
				return err
			}
			exact, err := actual.ExactDecimal()
			if op == operationDiv && errors.Is(err, ErrNonTerminating) {
				continue
			}
			if err != nil {
				return err
			}
			if !exact.Equal(expected) {
				return fmt.Errorf("operation %d on %s and %s: expected %s, actual %s", op, a, b, expected, exact)
			}
		}
	}
	return nil
}
