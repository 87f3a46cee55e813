package number

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	assert := assert.New(t)

	list := []Rational{
		Must(New(1, 2)), Must(New(1, 3)), Must(New(1, 4)), Must(New(2, 1)),
		Must(New(3, 2)), Must(New(-1000000, 2)), Must(New(1, 1)),
		Must(New(1000, 999)), Must(New(1000, 999)), Must(New(-1, 2)),
		Must(New(-1, 1)), Must(New(-100, 2)), Must(New(123456, 7)), Must(New(0, 7)),
	}
	Sort(list)
	assert.Equal("[-500000, -50, -1, -1/2, 0, 1/4, 1/3, 1/2, 1, 1000/999, 1000/999, 3/2, 2, 123456/7]", joinRationals(list))

	list = append(list, FromInt(math.MaxInt32), FromInt(math.MinInt32))
	Sort(list)
	assert.Equal("[-2147483648, -500000, -50, -1, -1/2, 0, 1/4, 1/3, 1/2, 1, 1000/999, 1000/999, 3/2, 2, 123456/7, 2147483647]", joinRationals(list))

	list = append(list, FromInt(math.MinInt64), FromInt(math.MaxInt64))
	Sort(list)
	assert.Equal("[-9223372036854775808, -2147483648, -500000, -50, -1, -1/2, 0, 1/4, 1/3, 1/2, 1, 1000/999, 1000/999, 3/2, 2, 123456/7, 2147483647, 9223372036854775807]", joinRationals(list))
}

func TestCmp(t *testing.T) {
	assert := assert.New(t)

	a := Must(New(math.MaxInt64, math.MaxInt64-1))
	b := Must(New(math.MaxInt64-1, math.MaxInt64-2))
	assert.Equal(-1, a.Cmp(b))
	assert.Equal(1, b.Cmp(a))
	assert.True(b.GreaterThan(a))
	assert.True(a.LessThan(b))
	assert.Equal(0, a.Cmp(a))

	c := Must(New(math.MinInt64, 3))
	d := Must(New(math.MinInt64+1, 3))
	assert.Equal(-1, c.Cmp(d))
	assert.Equal(-1, c.Cmp(FromInt(math.MinInt64/3)))
	assert.Equal(1, Must(New(1, math.MaxInt64)).Cmp(Zero))
	assert.Equal(-1, Must(New(-1, math.MaxInt64)).Cmp(Zero))
}

func TestEqualAndHash(t *testing.T) {
	assert := assert.New(t)

	a, b := Must(New(2, 4)), Must(New(-3, -6))
	assert.True(a.Equal(b))
	assert.Equal(a.Hash(), b.Hash())
	assert.NotEqual(a.Hash(), Must(New(1, 3)).Hash())
	assert.NotEqual(FromInt(2).Hash(), Must(New(1, 2)).Hash())

	seen := map[Rational]bool{a: true}
	assert.True(seen[b])
}

func TestProperties(t *testing.T) {
	assert := assert.New(t)

	rnd := rand.New(rand.NewSource(7))
	values := []Rational{Zero, One, FromInt(-1), FromInt(math.MaxInt32), Must(New(math.MaxInt64, 97))}
	for i := 0; i < 200; i++ {
		n := rnd.Int63n(2000001) - 1000000
		d := rnd.Int63n(100000) + 1
		r := Must(New(n, d))
		values = append(values, r)

		assert.Equal(uint64(1), GCD(r.Num(), r.Den()))
		assert.True(r.Den() > 0)
		if r.IsZero() {
			assert.Equal(int64(1), r.Den())
		}
	}

	for _, x := range values {
		for _, y := range values {
			assert.Equal(x.Cmp(y) == 0, x.Equal(y), "%s %s", x, y)
			assert.Equal(x.Cmp(y), -y.Cmp(x))

			s1, err1 := x.Add(y)
			s2, err2 := y.Add(x)
			assert.Equal(err1 == nil, err2 == nil)
			assert.Equal(s1, s2)
			p1, err1 := x.Mul(y)
			p2, err2 := y.Mul(x)
			assert.Equal(err1 == nil, err2 == nil)
			assert.Equal(p1, p2)
		}
	}

	random := values[5:]
	for i, x := range random {
		for j, y := range random {
			z := random[(i+j)%len(random)]
			l := Must(Must(x.Add(y)).Add(z))
			r := Must(x.Add(Must(y.Add(z))))
			assert.Equal(l, r)
		}
	}
}

func TestExactRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for a := int64(-50); a <= 50; a++ {
		for b := int64(-50); b <= 50; b++ {
			if b == 0 {
				continue
			}
			q := Must(FromInt(a).Div(FromInt(b)))
			assert.Equal(FromInt(a), Must(q.Mul(FromInt(b))))
		}
	}
	for _, a := range []int64{math.MaxInt64, math.MinInt64, math.MaxInt32 + 1, 999999999989} {
		for _, b := range []int64{3, -7, 1000003, math.MaxInt64} {
			if a == math.MinInt64 && b < 0 {
				continue
			}
			q := Must(FromInt(a).Div(FromInt(b)))
			assert.Equal(FromInt(a), Must(q.Mul(FromInt(b))), "%d %d", a, b)
		}
	}
}

func joinRationals(list []Rational) string {
	s := make([]string, len(list))
	for i, r := range list {
		s[i] = r.String()
	}
	return "[" + strings.Join(s, ", ") + "]"
}
