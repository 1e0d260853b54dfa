// pkg/runner/runner.go
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/depstash/depstash/pkg/platform"
)

// InstallError indicates the external install process exited non-zero or
// could not be started.
type InstallError struct {
	Command  string // The composed shell command that was run
	ExitCode int    // Exit status when the process ran and failed
	Err      error  // Underlying error
}

func (e *InstallError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("runner: command %q exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("runner: command %q failed: %v", e.Command, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Runner executes install commands as external processes. Output is
// forwarded for diagnostics, never parsed.
type Runner struct {
	logger *log.Logger
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithStdout sets the writer that receives the command's stdout.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr sets the writer that receives the command's stderr.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// New creates a Runner. Command output goes to the process stdout and
// stderr unless overridden.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger: log.New(io.Discard, "", 0),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the composed command string through the platform shell.
// Exit status zero is success; any other status is an *InstallError.
func (r *Runner) Run(ctx context.Context, command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return &InstallError{Command: command, Err: errors.New("empty command")}
	}

	shell, flag := platform.Shell()
	r.logger.Printf("Running: %s", command)

	cmd := exec.CommandContext(ctx, shell, flag, command)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &InstallError{Command: command, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &InstallError{Command: command, Err: err}
	}
	return nil
}

// Output runs a single executable with arguments and captures its combined
// output. Used for short queries like asking a tool for its version.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	r.logger.Printf("Querying: %s %s", name, strings.Join(args, " "))

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", name, err)
	}
	return string(out), nil
}
