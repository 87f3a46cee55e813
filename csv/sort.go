package csv

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MixinNetwork/rational/number"
)

// Sort orders the records by one field, nulls first when ascending, and
// rewinds the cursor.
func (r *Reader) Sort(name string, t FieldType, asc bool) error {
	i, err := r.FieldIndex(name)
	if err != nil {
		return err
	}
	return r.SortIndex(i, t, asc)
}

func (r *Reader) SortIndex(i int, t FieldType, asc bool) error {
	if i < 0 || i >= r.FieldCount() {
		return fmt.Errorf("%w: invalid field index %d, max is %d", ErrFormat, i, r.FieldCount()-1)
	}
	type keyed struct {
		key    interface{}
		record []string
	}
	rows := make([]keyed, len(r.records))
	for n, rec := range r.records {
		rows[n].record = rec
		if rec[i] == "" {
			continue
		}
		k, err := r.convert(rec[i], t)
		if err != nil {
			return fmt.Errorf("record %d field %d: %w", n+1, i, err)
		}
		rows[n].key = k
	}

	sort.SliceStable(rows, func(a, b int) bool {
		c := compareKeys(rows[a].key, rows[b].key)
		if asc {
			return c < 0
		}
		return c > 0
	})
	for n := range rows {
		r.records[n] = rows[n].record
	}
	r.current = -1
	return nil
}

func compareKeys(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch x := a.(type) {
	case string:
		return strings.Compare(x, b.(string))
	case time.Time:
		y := b.(time.Time)
		if x.Before(y) {
			return -1
		}
		if x.After(y) {
			return 1
		}
		return 0
	case int32:
		return compareInt64(int64(x), int64(b.(int32)))
	case int64:
		return compareInt64(x, b.(int64))
	case number.Rational:
		return x.Cmp(b.(number.Rational))
	}
	panic(a)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sum totals a rational field over every record, skipping nulls.
func (r *Reader) Sum(name string) (number.Rational, error) {
	i, err := r.FieldIndex(name)
	if err != nil {
		return number.Zero, err
	}
	return r.SumIndex(i)
}

func (r *Reader) SumIndex(i int) (number.Rational, error) {
	if i < 0 || i >= r.FieldCount() {
		return number.Zero, fmt.Errorf("%w: invalid field index %d, max is %d", ErrFormat, i, r.FieldCount()-1)
	}
	total := number.Zero
	for n, rec := range r.records {
		if rec[i] == "" {
			continue
		}
		v, err := number.Parse(rec[i])
		if err != nil {
			return number.Zero, fmt.Errorf("record %d field %d: %w", n+1, i, err)
		}
		total, err = total.Add(v)
		if err != nil {
			return number.Zero, fmt.Errorf("record %d field %d: %w", n+1, i, err)
		}
	}
	return total, nil
}
