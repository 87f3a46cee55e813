package csv

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MixinNetwork/rational/number"
)

type FieldType int

const (
	FieldString FieldType = iota
	FieldDate
	FieldInt32
	FieldInt64
	FieldRational
)

var fieldTypeNames = []string{
	FieldString:   "string",
	FieldDate:     "date",
	FieldInt32:    "int32",
	FieldInt64:    "int64",
	FieldRational: "rational",
}

func (t FieldType) String() string {
	if t < 0 || int(t) >= len(fieldTypeNames) {
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
	return fieldTypeNames[t]
}

func ParseFieldType(s string) (FieldType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range fieldTypeNames {
		if n == name {
			return FieldType(t), nil
		}
	}
	return FieldString, fmt.Errorf("%w: not supported field type %s", ErrFormat, s)
}

// convert returns a string, time.Time, int32, int64 or number.Rational.
func (r *Reader) convert(value string, t FieldType) (interface{}, error) {
	switch t {
	case FieldString:
		return value, nil
	case FieldDate:
		d, err := time.Parse(r.DateLayout, value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFormat, err.Error())
		}
		return d, nil
	case FieldInt32:
		i, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFormat, err.Error())
		}
		return int32(i), nil
	case FieldInt64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFormat, err.Error())
		}
		return i, nil
	case FieldRational:
		return number.Parse(value)
	}
	return nil, fmt.Errorf("%w: not supported field type %s", ErrFormat, t)
}

func (r *Reader) getAt(i int, t FieldType) (interface{}, bool, error) {
	v, err := r.value(i)
	if err != nil || v == "" {
		return nil, false, err
	}
	c, err := r.convert(v, t)
	if err != nil {
		return nil, false, fmt.Errorf("field %d: %w", i, err)
	}
	return c, true, nil
}

func (r *Reader) get(name string, t FieldType) (interface{}, bool, error) {
	i, err := r.FieldIndex(name)
	if err != nil {
		return nil, false, err
	}
	return r.getAt(i, t)
}

func (r *Reader) IsNull(name string) (bool, error) {
	_, ok, err := r.get(name, FieldString)
	return !ok, err
}

func (r *Reader) IsNullAt(i int) (bool, error) {
	_, ok, err := r.getAt(i, FieldString)
	return !ok, err
}

// String returns the field of the current record, ok is false for null.
func (r *Reader) String(name string) (string, bool, error) {
	v, ok, err := r.get(name, FieldString)
	if !ok {
		return "", ok, err
	}
	return v.(string), ok, err
}

func (r *Reader) StringAt(i int) (string, bool, error) {
	v, ok, err := r.getAt(i, FieldString)
	if !ok {
		return "", ok, err
	}
	return v.(string), ok, err
}

func (r *Reader) Int32(name string) (int32, bool, error) {
	v, ok, err := r.get(name, FieldInt32)
	if !ok {
		return 0, ok, err
	}
	return v.(int32), ok, err
}

func (r *Reader) Int32At(i int) (int32, bool, error) {
	v, ok, err := r.getAt(i, FieldInt32)
	if !ok {
		return 0, ok, err
	}
	return v.(int32), ok, err
}

func (r *Reader) Int64(name string) (int64, bool, error) {
	v, ok, err := r.get(name, FieldInt64)
	if !ok {
		return 0, ok, err
	}
	return v.(int64), ok, err
}

func (r *Reader) Int64At(i int) (int64, bool, error) {
	v, ok, err := r.getAt(i, FieldInt64)
	if !ok {
		return 0, ok, err
	}
	return v.(int64), ok, err
}

func (r *Reader) Date(name string) (time.Time, bool, error) {
	v, ok, err := r.get(name, FieldDate)
	if !ok {
		return time.Time{}, ok, err
	}
	return v.(time.Time), ok, err
}

func (r *Reader) DateAt(i int) (time.Time, bool, error) {
	v, ok, err := r.getAt(i, FieldDate)
	if !ok {
		return time.Time{}, ok, err
	}
	return v.(time.Time), ok, err
}

func (r *Reader) Rational(name string) (number.Rational, bool, error) {
	v, ok, err := r.get(name, FieldRational)
	if !ok {
		return number.Zero, ok, err
	}
	return v.(number.Rational), ok, err
}

func (r *Reader) RationalAt(i int) (number.Rational, bool, error) {
	v, ok, err := r.getAt(i, FieldRational)
	if !ok {
		return number.Zero, ok, err
	}
	return v.(number.Rational), ok, err
}
