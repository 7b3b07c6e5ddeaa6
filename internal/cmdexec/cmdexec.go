// Package cmdexec abstracts external command execution for testability.
// Production code uses Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// waitDelay bounds how long Output waits for inherited pipes after the
// context is done. A login shell may leave children holding stdout open.
const waitDelay = 500 * time.Millisecond

// Commander abstracts external command execution.
type Commander interface {
	// Output executes an external command and returns its standard output.
	// The command is killed when ctx is done.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// OutputWithEnv is Output with additional environment variables merged on
	// top of the current process environment.
	OutputWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error)

	// RunWithEnv executes an external command attached to the given stdio, with
	// additional environment variables merged on top of the current process environment.
	RunWithEnv(ctx context.Context, env map[string]string, stdio Stdio, name string, args ...string) error
}

// Stdio is the set of streams handed to an attached command.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Output runs the command using os/exec.CommandContext and captures stdout.
func (c *RealCommander) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return c.OutputWithEnv(ctx, nil, name, args...)
}

// OutputWithEnv runs the command with env merged into the process environment
// and captures stdout.
func (c *RealCommander) OutputWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), mapToEnvSlice(env)...)
	}
	out, err := cmd.Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("cmdexec.Output: %s: %w", name, ctxErr)
	}
	if err != nil {
		return nil, fmt.Errorf("cmdexec.Output: %s: %w", name, err)
	}
	return out, nil
}

// RunWithEnv executes the command with additional environment variables.
// The provided env map is merged on top of the current process environment.
func (c *RealCommander) RunWithEnv(ctx context.Context, env map[string]string, stdio Stdio, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), mapToEnvSlice(env)...)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err
	return cmd.Run()
}

// mapToEnvSlice converts a map of environment variables to a slice of "KEY=VALUE" strings.
func mapToEnvSlice(env map[string]string) []string {
	if env == nil {
		return nil
	}
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
