package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/csv"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/number"
	"github.com/MixinNetwork/rational/process"
	"github.com/MixinNetwork/rational/rpc"
	"github.com/MixinNetwork/rational/util"
	"github.com/urfave/cli/v2"
)

func calcCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("calc needs two numbers, got %d", c.NArg())
	}
	result, err := rpc.Calculate(c.String("op"), c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func roundCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	x, err := number.Parse(c.Args().First())
	if err != nil {
		return err
	}
	scale, mode := custom.Number.Scale, custom.RoundingMode()
	if c.IsSet("scale") {
		scale, err = validScale(c.Int("scale"))
		if err != nil {
			return err
		}
	}
	if c.IsSet("mode") {
		mode, err = number.ParseRoundingMode(c.String("mode"))
		if err != nil {
			return err
		}
	}
	r, err := x.Round(scale, mode)
	if err != nil {
		return err
	}
	fmt.Printf("fraction:\t%s\n", r.String())
	fmt.Printf("decimal:\t%s\n", x.DecimalString(scale, mode))
	return nil
}

func parseCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	x, err := number.Parse(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Printf("fraction:\t%s\n", x.String())
	fmt.Printf("decimal:\t%s\n", x.DecimalString(custom.Number.Scale, custom.RoundingMode()))
	fmt.Printf("float:\t\t%v\n", x.Float64())
	if d, err := x.ExactDecimal(); err == nil {
		fmt.Printf("exact:\t\t%s\n", d.String())
	}
	return nil
}

func sortValuesCmd(c *cli.Context) error {
	lines, err := util.ReadLines(c.String("file"))
	if err != nil {
		return err
	}
	values := make([]number.Rational, 0, len(lines))
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		r, err := number.Parse(l)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		values = append(values, r)
	}
	number.Sort(values)
	for _, r := range values {
		fmt.Println(r.String())
	}
	return nil
}

func sortCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	reader := newReader(custom)
	err = reader.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	t, err := csv.ParseFieldType(c.String("type"))
	if err != nil {
		return err
	}
	i, err := reader.FieldLookup(c.String("field"))
	if err != nil {
		return err
	}
	err = reader.SortIndex(i, t, !c.Bool("desc"))
	if err != nil {
		return err
	}

	sep := string(reader.Separator)
	if reader.Header {
		fmt.Println(strings.Join(reader.FieldNames(), sep))
	}
	for _, rec := range reader.Records() {
		fmt.Println(formatRecord(reader, rec))
	}
	return nil
}

func sumCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	reader := newReader(custom)
	switch {
	case c.String("exec") != "":
		err = readCommandOutput(c.Context, reader, c.String("exec"), c.Duration("timeout"))
	case c.String("file") != "":
		err = reader.ReadFile(c.String("file"))
	default:
		err = fmt.Errorf("sum needs a file or a command")
	}
	if err != nil {
		return err
	}

	i, err := reader.FieldLookup(c.String("field"))
	if err != nil {
		return err
	}
	sum, err := reader.SumIndex(i)
	if err != nil {
		return err
	}
	fmt.Printf("records:\t%d\n", reader.RecordCount())
	fmt.Printf("fraction:\t%s\n", sum.String())
	fmt.Printf("decimal:\t%s\n", sum.DecimalString(custom.Number.Scale, custom.RoundingMode()))
	return nil
}

func importCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	file := c.String("file")
	reader := newReader(custom)
	err = reader.ReadFile(file)
	if err != nil {
		return err
	}
	name := c.String("name")
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	store, err := openStore(custom, c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.WriteDataset(name, reader)
	if err != nil {
		return err
	}
	fmt.Printf("dataset:\t%s\n", name)
	fmt.Printf("id:\t\t%s\n", id)
	fmt.Printf("records:\t%d\n", reader.RecordCount())
	return nil
}

func valueCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := openStore(custom, c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	name := c.String("name")
	if name == "" {
		values, err := store.ListValues()
		if err != nil {
			return err
		}
		for n, r := range values {
			fmt.Printf("%s\t%s\n", n, r.String())
		}
		return nil
	}

	switch {
	case c.Bool("remove"):
		return store.RemoveValue(name)
	case c.IsSet("set"):
		r, err := number.Parse(c.String("set"))
		if err != nil {
			return err
		}
		err = store.WriteValue(name, r)
		if err != nil {
			return err
		}
	}
	r, found, err := store.ReadValue(name)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("value %s not found", name)
	}
	fmt.Printf("%s\t%s\n", name, r.String())
	return nil
}

func readCommandOutput(ctx context.Context, reader *csv.Reader, command string, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cmd := process.New("sh", "-c", command)
	code, err := cmd.Execute(ctx)
	if err != nil {
		return err
	}
	if code != 0 {
		logger.Errorf("%s exit %d: %s\n", command, code, cmd.Error())
		return fmt.Errorf("command %s exit %d", command, code)
	}
	return reader.Read(strings.NewReader(cmd.Output()))
}

func newReader(custom *config.Custom) *csv.Reader {
	reader := csv.NewReader()
	reader.Separator = []rune(custom.CSV.Separator)[0]
	reader.Delimiter = []rune(custom.CSV.Delimiter)[0]
	reader.Escape = []rune(custom.CSV.Escape)[0]
	reader.DateLayout = custom.CSV.DateLayout
	reader.Header = custom.HasHeader()
	return reader
}

func validScale(s int) (int32, error) {
	if s < -config.MaxScale || s > config.MaxScale {
		return 0, fmt.Errorf("invalid scale %d", s)
	}
	return int32(s), nil
}

// formatRecord writes the record back with the reader's separator, quoting
// the fragments that would not tokenize again.
func formatRecord(reader *csv.Reader, rec []string) string {
	sep, del, esc := string(reader.Separator), string(reader.Delimiter), string(reader.Escape)
	fields := make([]string, len(rec))
	for i, v := range rec {
		if !strings.Contains(v, sep) && !strings.Contains(v, del) {
			fields[i] = v
			continue
		}
		fields[i] = del + strings.ReplaceAll(v, del, esc+del) + del
	}
	return strings.Join(fields, sep)
}
