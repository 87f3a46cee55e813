package number

import (
	"encoding/binary"
	"math/big"
	"sort"

	"github.com/cespare/xxhash/v2"
)

func (x Rational) Equal(y Rational) bool {
	return x == y
}

// Hash is derived from the canonical fields only, so equal values always
// produce the same hash.
func (x Rational) Hash() uint64 {
	return xxhash.Sum64(x.bytes())
}

func (x Rational) bytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], uint64(x.num))
	binary.BigEndian.PutUint64(b[8:], uint64(x.Den()))
	return b
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Rational) Cmp(y Rational) int {
	if x.den == y.den {
		return compare(x.num, y.num)
	}
	xd, yd := x.Den(), y.Den()
	if risksOverflow(x.num, xd, y.num, yd) {
		l := new(big.Int).Mul(big.NewInt(x.num), big.NewInt(yd))
		r := new(big.Int).Mul(big.NewInt(y.num), big.NewInt(xd))
		return l.Cmp(r)
	}
	return compare(x.num*yd, y.num*xd)
}

func (x Rational) GreaterThan(y Rational) bool {
	return x.Cmp(y) > 0
}

func (x Rational) LessThan(y Rational) bool {
	return x.Cmp(y) < 0
}

// Sort orders rs ascending, keeping equal values in their input order.
func Sort(rs []Rational) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].LessThan(rs[j])
	})
}

func compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
