package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/csv"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/rpc"
	"github.com/MixinNetwork/rational/storage"
	"github.com/urfave/cli/v2"
)

func main() {
	defaultRPC := os.Getenv("RATIONAL_RPC")
	if defaultRPC == "" {
		defaultRPC = fmt.Sprintf("http://127.0.0.1:%d", config.DefaultRPCPort)
	}

	app := cli.NewApp()
	app.Name = "rational"
	app.Usage = "Exact rational arithmetic on numbers and CSV datasets."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
		&cli.StringFlag{
			Name:    "node",
			Aliases: []string{"n"},
			Value:   defaultRPC,
			Usage:   "the RPC endpoint, and the default value is read from environment variable RATIONAL_RPC",
		},
	}
	app.Before = setupLogger
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:      "calc",
			Usage:     "Apply a binary operation to two numbers",
			ArgsUsage: "A B",
			Action:    calcCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "op",
					Aliases: []string{"o"},
					Value:   "add",
					Usage:   "add, sub, mul, div, pow, min, max or cmp",
				},
			},
		},
		{
			Name:      "round",
			Usage:     "Round a number to a decimal scale",
			ArgsUsage: "VALUE",
			Action:    roundCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "scale",
					Aliases: []string{"s"},
					Usage:   "the digits after the decimal point, defaults to the configured scale",
				},
				&cli.StringFlag{
					Name:    "mode",
					Aliases: []string{"m"},
					Usage:   "the rounding mode, defaults to the configured rounding",
				},
			},
		},
		{
			Name:      "parse",
			Usage:     "Parse a number and print its representations",
			ArgsUsage: "VALUE",
			Action:    parseCmd,
		},
		{
			Name:   "sortvalues",
			Usage:  "Sort the numbers of a file, one per line",
			Action: sortValuesCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Required: true,
					Usage:    "the file to read",
				},
			},
		},
		{
			Name:   "sort",
			Usage:  "Sort the records of a CSV file by a field",
			Action: sortCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Required: true,
					Usage:    "the CSV file",
				},
				&cli.StringFlag{
					Name:  "field",
					Usage: "the field name, or the zero based index without header",
				},
				&cli.StringFlag{
					Name:  "type",
					Value: csv.FieldString.String(),
					Usage: "string, date, int32, int64 or rational",
				},
				&cli.BoolFlag{
					Name:  "desc",
					Usage: "sort in descending order",
				},
			},
		},
		{
			Name:   "sum",
			Usage:  "Sum a rational field of a CSV file or of a command output",
			Action: sumCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"f"},
					Usage:   "the CSV file",
				},
				&cli.StringFlag{
					Name:  "exec",
					Usage: "the shell command printing the CSV to stdout",
				},
				&cli.DurationFlag{
					Name:  "timeout",
					Usage: "kill the command after this duration",
				},
				&cli.StringFlag{
					Name:     "field",
					Required: true,
					Usage:    "the field name, or the zero based index without header",
				},
			},
		},
		{
			Name:   "import",
			Usage:  "Import a CSV file as a named dataset",
			Action: importCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "dir",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "the data directory",
				},
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Required: true,
					Usage:    "the CSV file",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "the dataset name, defaults to the file name",
				},
			},
		},
		{
			Name:   "value",
			Usage:  "Read, write or list the named values",
			Action: valueCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "dir",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "the data directory",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "the value name, list all values when empty",
				},
				&cli.StringFlag{
					Name:  "set",
					Usage: "the number to store under the name",
				},
				&cli.BoolFlag{
					Name:  "remove",
					Usage: "remove the named value",
				},
			},
		},
		{
			Name:      "call",
			Usage:     "Call a method of the RPC server",
			ArgsUsage: "METHOD [PARAMS...]",
			Action:    callCmd,
		},
		{
			Name:   "serve",
			Usage:  "Start the JSON RPC server",
			Action: serveCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Usage:   "the data directory, defaults to the configured one",
				},
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Usage:   "the port to listen, defaults to the configured one",
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Custom, error) {
	file := c.String("config")
	if file == "" {
		return config.Default(), nil
	}
	return config.Initialize(file)
}

func setupLogger(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	level := custom.Log.Level
	if c.IsSet("log") {
		level = c.Int("log")
	}
	logger.SetLevel(level)
	logger.SetLimiter(custom.Log.Limiter)
	return logger.SetFilter(custom.Log.Filter)
}

func openStore(custom *config.Custom, dir string) (*storage.BadgerStore, error) {
	if dir == "" {
		dir = custom.Storage.Dir
	}
	if dir == "" {
		return nil, fmt.Errorf("no data directory")
	}
	return storage.NewBadgerStore(custom, dir)
}

func serveCmd(c *cli.Context) error {
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := openStore(custom, c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	port := custom.RPC.Port
	if c.IsSet("port") {
		port = c.Int("port")
	}
	return rpc.StartHTTP(custom, store, port)
}

func callCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("call needs a method")
	}
	params := make([]interface{}, 0, c.NArg()-1)
	for _, p := range c.Args().Tail() {
		params = append(params, p)
	}
	data, err := rpc.CallRPC(c.String("node"), c.Args().First(), params)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
