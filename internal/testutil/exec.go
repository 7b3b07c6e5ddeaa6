package testutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hbjs97/envpath/internal/cmdexec"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	Output []byte
	Err    error

	// Block makes the command wait until its context is done, then return the
	// context error. Used to simulate a hanging login shell.
	Block bool
}

// FakeCommander returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..." format.
// If no exact match is found, it tries prefix matching.
type FakeCommander struct {
	// Responses maps command strings to their responses.
	// Key format: "command arg1 arg2" (e.g., "/bin/bash -l -c echo $PATH")
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string

	// Deadlines records the remaining time on each call's context, in order.
	// Zero means the context had no deadline.
	Deadlines []time.Duration

	// EnvCalls records the environment variable maps passed to OutputWithEnv
	// and RunWithEnv, in order.
	EnvCalls []map[string]string

	// DefaultResponse is returned when no matching response is found.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response
}

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]Response),
	}
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.Responses[key] = Response{
		Output: []byte(output),
		Err:    err,
	}
}

// RegisterBlocking adds a response that hangs until the caller's context is done.
func (c *FakeCommander) RegisterBlocking(key string) {
	c.Responses[key] = Response{Block: true}
}

// Output looks up the command in Responses and returns the matching response.
func (c *FakeCommander) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	fullCmd := name
	if len(args) > 0 {
		fullCmd = name + " " + strings.Join(args, " ")
	}

	c.Calls = append(c.Calls, fullCmd)
	var remaining time.Duration
	if d, ok := ctx.Deadline(); ok {
		remaining = time.Until(d)
	}
	c.Deadlines = append(c.Deadlines, remaining)

	resp, ok := c.lookup(fullCmd)
	if !ok {
		return nil, fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
	}
	if resp.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return resp.Output, resp.Err
}

// OutputWithEnv records the environment variables and behaves like Output.
func (c *FakeCommander) OutputWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	c.EnvCalls = append(c.EnvCalls, env)
	return c.Output(ctx, name, args...)
}

// RunWithEnv records the environment variables, writes any registered output
// to stdio.Out and returns the registered error.
func (c *FakeCommander) RunWithEnv(ctx context.Context, env map[string]string, stdio cmdexec.Stdio, name string, args ...string) error {
	c.EnvCalls = append(c.EnvCalls, env)
	out, err := c.Output(ctx, name, args...)
	if stdio.Out != nil && len(out) > 0 {
		if _, werr := stdio.Out.Write(out); werr != nil {
			return werr
		}
	}
	return err
}

func (c *FakeCommander) lookup(fullCmd string) (Response, bool) {
	// Exact match first.
	if resp, ok := c.Responses[fullCmd]; ok {
		return resp, true
	}

	// Try prefix matching (longest prefix wins).
	bestKey := ""
	for key := range c.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		return c.Responses[bestKey], true
	}

	// Default response.
	if c.DefaultResponse != nil {
		return *c.DefaultResponse, true
	}
	return Response{}, false
}

// Called returns true if a command matching the given prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// CallCount returns the number of times a command matching the given prefix was executed.
func (c *FakeCommander) CallCount(prefix string) int {
	count := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}
