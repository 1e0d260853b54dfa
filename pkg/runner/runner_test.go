// pkg/runner/runner_test.go
package runner

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell tests assume a POSIX sh")
	}
}

func TestRunSuccess(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	require.NoError(t, New().Run(context.Background(), "true"))
}

func TestRunNonZeroExit(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	err := New().Run(context.Background(), "exit 3")
	require.Error(t, err)

	var installErr *InstallError
	require.True(t, errors.As(err, &installErr))
	require.Equal(t, "exit 3", installErr.Command)
	require.Equal(t, 3, installErr.ExitCode)
}

func TestRunEmptyCommand(t *testing.T) {
	t.Parallel()

	err := New().Run(context.Background(), "   ")
	require.Error(t, err)

	var installErr *InstallError
	require.True(t, errors.As(err, &installErr))
}

func TestRunForwardsOutput(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	var stdout, stderr bytes.Buffer
	r := New(WithStdout(&stdout), WithStderr(&stderr))

	require.NoError(t, r.Run(context.Background(), "echo out && echo err 1>&2"))
	require.Equal(t, "out\n", stdout.String())
	require.Equal(t, "err\n", stderr.String())
}

func TestOutput(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	out, err := New().Output(context.Background(), "sh", "-c", "echo 2.3")
	require.NoError(t, err)
	require.Equal(t, "2.3\n", out)
}

func TestOutputMissingExecutable(t *testing.T) {
	t.Parallel()

	_, err := New().Output(context.Background(), "depstash-no-such-tool-xyz")
	require.Error(t, err)
}
