package process

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func requireShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
}

func TestExecute(t *testing.T) {
	defer goleak.VerifyNone(t)
	requireShell(t)
	require := require.New(t)

	cl := New("sh", "-c", "echo hello; echo oops >&2; exit 3")
	code, err := cl.Execute(context.Background())
	require.Nil(err)
	require.Equal(3, code)
	require.Equal("hello\n", cl.Output())
	require.Equal("oops\n", cl.Error())
	require.Equal("sh -c echo hello; echo oops >&2; exit 3", cl.String())

	code, err = cl.Execute(context.Background())
	require.Nil(err)
	require.Equal(3, code)
	require.Equal("hello\n", cl.Output())
}

func TestExecuteInputs(t *testing.T) {
	defer goleak.VerifyNone(t)
	requireShell(t)
	require := require.New(t)

	cl := New("sh", "-c", "while read line; do echo \"got $line\"; done")
	cl.AddInput("1/3")
	cl.AddInput("0.25")
	var streamed strings.Builder
	cl.Stdout = &streamed
	code, err := cl.Execute(context.Background())
	require.Nil(err)
	require.Equal(0, code)
	require.Equal("got 1/3\ngot 0.25\n", cl.Output())
	require.Equal(cl.Output(), streamed.String())
	require.Equal("", cl.Error())

	cl = New("sh", "-c", "exit 0")
	for i := 0; i < 1000; i++ {
		cl.AddInput(strings.Repeat("x", 1024))
	}
	code, err = cl.Execute(context.Background())
	require.Nil(err)
	require.Equal(0, code)
}

func TestExecuteErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	requireShell(t)
	require := require.New(t)

	_, err := New("/nonexistent/executable").Execute(context.Background())
	require.NotNil(err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	code, err := New("sleep", "10").Execute(ctx)
	require.ErrorIs(err, context.DeadlineExceeded)
	require.Equal(-1, code)
	require.True(time.Since(start) < 5*time.Second)
}
