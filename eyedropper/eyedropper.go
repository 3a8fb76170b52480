// Package eyedropper samples a screen color through an external picker program
// such as hyprpicker, xcolor or grim+slurp wrappers. The program must print a
// color string (normally hex) on stdout and exit 0; anything else counts as a
// user cancel.
package eyedropper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var (
	// ErrCancelled means the user dismissed the sampler, state must not change
	ErrCancelled = errors.New("eyedropper cancelled")
	// ErrUnavailable means no sampler program is configured or installed
	ErrUnavailable = errors.New("eyedropper unavailable")
)

// DefaultTimeout bounds a sampling session when none is configured
const DefaultTimeout = 30 * time.Second

const waitDelay = 500 * time.Millisecond

// Sampler returns one sampled color string
type Sampler interface {
	Available() bool
	Sample(ctx context.Context) (string, error)
}

// Command runs an external program to sample a color
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration

	lookPath func(string) (string, error)
}

// NewCommand returns a sampler for name with args; an empty name is unavailable
func NewCommand(name string, args []string, timeout time.Duration) *Command {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Command{Name: name, Args: args, Timeout: timeout, lookPath: exec.LookPath}
}

// Available reports whether the program is configured and resolvable on PATH
func (c *Command) Available() bool {
	if c == nil || c.Name == "" {
		return false
	}
	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath(c.Name)
	return err == nil
}

// Sample runs the program and returns the first non-empty line of its output
func (c *Command) Sample(ctx context.Context) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Orphaned grandchildren may hold the pipes open after a kill
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	}

	line := firstLine(stdout.String())
	if err != nil {
		if line == "" {
			return "", fmt.Errorf("%w: %s", ErrCancelled, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("eyedropper %s: %w", c.Name, err)
	}
	if line == "" {
		return "", ErrCancelled
	}
	return line, nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
