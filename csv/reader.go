package csv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultSeparator  = ';'
	DefaultDelimiter  = '"'
	DefaultEscape     = '"'
	DefaultDateLayout = "02/01/2006"
)

var ErrFormat = errors.New("csv format error")

// Reader loads a whole delimited text file into memory and walks its
// records with a cursor. Empty fragments are nulls.
type Reader struct {
	Separator  rune
	Delimiter  rune
	Escape     rune
	DateLayout string
	Header     bool

	fields  map[string]int
	names   []string
	width   int
	records [][]string
	current int
}

func NewReader() *Reader {
	r := &Reader{
		Separator:  DefaultSeparator,
		Delimiter:  DefaultDelimiter,
		Escape:     DefaultEscape,
		DateLayout: DefaultDateLayout,
		Header:     true,
	}
	r.Reset()
	return r
}

func (r *Reader) Reset() {
	r.fields = make(map[string]int)
	r.names = nil
	r.records = nil
	r.width = -1
	r.current = -1
}

func (r *Reader) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Read(f)
}

func (r *Reader) Read(in io.Reader) error {
	r.Reset()
	br := bufio.NewReader(in)
	for first := true; ; first = false {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		eof := err == io.EOF
		if eof && line == "" {
			return nil
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if first && r.Header {
			err = r.readHeader(line)
		} else {
			err = r.readRecord(line)
		}
		if err != nil || eof {
			return err
		}
	}
}

// Load replaces the content with an already tokenized dataset.
func (r *Reader) Load(names []string, records [][]string) error {
	r.Reset()
	r.Header = len(names) > 0
	if r.Header {
		if err := r.setHeader(names); err != nil {
			return err
		}
	}
	for _, rec := range records {
		if err := r.addRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) readHeader(line string) error {
	return r.setHeader(r.fragments(line))
}

func (r *Reader) setHeader(names []string) error {
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("%w: empty field name", ErrFormat)
		}
		key := strings.ToUpper(name)
		if _, found := r.fields[key]; found {
			return fmt.Errorf("%w: duplicated field name %s", ErrFormat, key)
		}
		r.fields[key] = len(r.names)
		r.names = append(r.names, key)
	}
	r.width = len(r.names)
	return nil
}

func (r *Reader) readRecord(line string) error {
	return r.addRecord(r.fragments(line))
}

func (r *Reader) addRecord(values []string) error {
	if r.width < 0 {
		r.width = len(values)
	} else if len(values) != r.width {
		return fmt.Errorf("%w: record %d with %d fragments, expecting %d", ErrFormat, len(r.records)+1, len(values), r.width)
	}
	r.records = append(r.records, values)
	return nil
}

// fragments splits one line. The delimiter toggles quoting, and inside
// quotes the escape rune followed by the delimiter yields a delimiter.
func (r *Reader) fragments(line string) []string {
	var result []string
	var value strings.Builder
	quoted := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if quoted && c == r.Escape && i+1 < len(runes) && runes[i+1] == r.Delimiter {
			value.WriteRune(r.Delimiter)
			i++
			continue
		}
		if c == r.Delimiter {
			quoted = !quoted
			continue
		}
		if c == r.Separator && !quoted {
			result = append(result, value.String())
			value.Reset()
			continue
		}
		value.WriteRune(c)
	}
	return append(result, value.String())
}

// Next moves the cursor to the next record.
func (r *Reader) Next() bool {
	if r.current < len(r.records)-1 {
		r.current++
		return true
	}
	return false
}

// Rewind moves the cursor before the first record.
func (r *Reader) Rewind() {
	r.current = -1
}

func (r *Reader) RecordCount() int {
	return len(r.records)
}

func (r *Reader) FieldCount() int {
	if r.width < 0 {
		return 0
	}
	return r.width
}

func (r *Reader) FieldNames() []string {
	return r.names
}

// Records exposes the loaded records, which must not be modified.
func (r *Reader) Records() [][]string {
	return r.records
}

func (r *Reader) FieldIndex(name string) (int, error) {
	if !r.Header {
		return 0, fmt.Errorf("%w: no header, read %s by index", ErrFormat, name)
	}
	key := strings.ToUpper(name)
	i, found := r.fields[key]
	if !found {
		return 0, fmt.Errorf("%w: field not found %s", ErrFormat, key)
	}
	return i, nil
}

// FieldLookup resolves a field by name, or by its zero based index when
// the file has no header.
func (r *Reader) FieldLookup(field string) (int, error) {
	if r.Header {
		return r.FieldIndex(field)
	}
	i, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || i < 0 || i >= r.FieldCount() {
		return 0, fmt.Errorf("%w: invalid field index %s", ErrFormat, field)
	}
	return i, nil
}

func (r *Reader) value(i int) (string, error) {
	if i < 0 || i >= r.FieldCount() {
		return "", fmt.Errorf("%w: invalid field index %d, max is %d", ErrFormat, i, r.FieldCount()-1)
	}
	if r.current < 0 || r.current >= len(r.records) {
		return "", fmt.Errorf("%w: no current record", ErrFormat)
	}
	return r.records[r.current][i], nil
}
