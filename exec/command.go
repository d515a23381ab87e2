package exec

import (
	"context"
	osexec "os/exec"
)

// Command is the concrete implementation of the Runner interface.
// Settings are fixed at creation, so a Command may be shared between goroutines.
type Command struct {
	config *config
}

// New creates a new Command with the given options.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// Run executes the command with the given arguments.
//
// When the process cannot be started, the context expires, or the process
// exits non-zero, Run returns an *ExecError holding whatever output was
// captured. The Result is returned whenever the process was started.
func (c *Command) Run(ctx context.Context, args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	if c.config.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	if c.config.dir != "" {
		cmd.Dir = c.config.dir
	}
	cmd.Env = c.config.environ()

	combined := &combinedWriter{}
	stdout := newCapture(combined, c.config.maxOutput)
	stderr := newCapture(combined, c.config.maxOutput)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      err,
		}
	}
	err := cmd.Wait()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// Clone creates a copy of the command whose options can diverge from the original.
func (c *Command) Clone(opts ...Option) *Command {
	clone := &Command{config: c.config.clone()}
	for _, opt := range opts {
		opt(clone)
	}
	return clone
}
