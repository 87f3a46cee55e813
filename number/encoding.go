package number

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v4"
)

const MsgpackExtId = 1

func init() {
	msgpack.RegisterExt(MsgpackExtId, (*Rational)(nil))
}

func (x Rational) MarshalMsgpack() ([]byte, error) {
	return x.bytes(), nil
}

func (x *Rational) UnmarshalMsgpack(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("%w: msgpack payload of %d bytes", ErrMalformed, len(data))
	}
	num := int64(binary.BigEndian.Uint64(data[:8]))
	den := int64(binary.BigEndian.Uint64(data[8:]))
	r, err := New(num, den)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

func (x Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON accepts a quoted Parse form or a bare JSON number.
func (x *Rational) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformed, err.Error())
		}
		s = unquoted
	}
	r, err := Parse(s)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Rational) UnmarshalText(b []byte) error {
	r, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = r
	return nil
}
