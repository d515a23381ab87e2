package exec

import (
	"context"
	"time"
)

// Runner executes an external program and captures its output.
type Runner interface {
	// Run executes args[0] with the remaining arguments.
	// A non-zero exit returns both the Result and an *ExecError.
	Run(ctx context.Context, args ...string) (*Result, error)
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is stdout and stderr interleaved in write order
	Combined string

	// ExitCode is the exit code returned by the command
	ExitCode int
}

// Option configures a Command at creation time.
type Option func(*Command)

// WithEnv returns an Option that adds environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.env[k] = v
		}
	}
}

// WithDir returns an Option that sets the working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.dir = dir
	}
}

// WithTimeout returns an Option that bounds each run. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Command) {
		c.config.timeout = timeout
	}
}

// WithInheritEnv returns an Option that passes the parent environment through.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.inheritEnv = true
	}
}

// WithDisableColors returns an Option that asks tools for uncolored output.
// Compiler diagnostics are shown verbatim to users, so escape codes must not leak.
func WithDisableColors() Option {
	return func(c *Command) {
		c.config.disableColors = true
	}
}

// WithMaxOutput returns an Option that caps the bytes kept per stream.
// Output past the cap is discarded. Zero keeps everything.
func WithMaxOutput(n int) Option {
	return func(c *Command) {
		c.config.maxOutput = n
	}
}
