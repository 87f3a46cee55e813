package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/MixinNetwork/rational/logger"
	"golang.org/x/sync/errgroup"
)

const WaitDelay = 3 * time.Second

// CommandLine runs an executable, captures its standard output and error,
// and types Inputs into its standard input, one line each.
type CommandLine struct {
	Path   string
	Args   []string
	Inputs []string

	// Stdout and Stderr, when set, receive the streams as they are produced
	// in addition to the captured copies.
	Stdout io.Writer
	Stderr io.Writer

	output bytes.Buffer
	errout bytes.Buffer
}

func New(path string, args ...string) *CommandLine {
	return &CommandLine{Path: path, Args: args}
}

func (c *CommandLine) AddInput(line string) {
	c.Inputs = append(c.Inputs, line)
}

// Execute returns the exit code of the process. A non-zero exit code is not
// an error, failing to start the process or a cancelled ctx is.
func (c *CommandLine) Execute(ctx context.Context) (int, error) {
	c.output.Reset()
	c.errout.Reset()

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.WaitDelay = WaitDelay
	cmd.Stdout = tee(&c.output, c.Stdout)
	cmd.Stderr = tee(&c.errout, c.Stderr)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return -1, err
	}
	err = cmd.Start()
	if err != nil {
		return -1, err
	}
	logger.Verbosef("process.Execute(%s) pid %d\n", c.String(), cmd.Process.Pid)

	var g errgroup.Group
	g.Go(func() error {
		defer stdin.Close()
		for _, line := range c.Inputs {
			_, err := io.WriteString(stdin, line+"\n")
			if err != nil {
				logger.Debugf("process.Execute(%s) input %s\n", c.String(), err)
				return nil
			}
		}
		return nil
	})
	g.Go(cmd.Wait)
	err = g.Wait()

	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return cmd.ProcessState.ExitCode(), nil
}

func (c *CommandLine) Output() string {
	return c.output.String()
}

func (c *CommandLine) Error() string {
	return c.errout.String()
}

func (c *CommandLine) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
