package exec

import (
	stderrors "errors"
	"fmt"

	"github.com/decompme/toolerr/errors"
)

// ExecError represents an error that occurred during command execution.
// It includes the exit code, the command that was run, and any captured output.
type ExecError struct {
	// Command is the full command that was executed (including arguments)
	Command []string

	// ExitCode is the exit code returned by the command, or -1 if it never ran
	ExitCode int

	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Err is the underlying error from the execution
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// ProcessFailure returns the raw failure record used to build a ToolFailure.
func (e *ExecError) ProcessFailure() errors.ProcessFailure {
	command := e.Command
	if command == nil {
		command = []string{}
	}
	return errors.ProcessFailure{
		Command:    command,
		ReturnCode: e.ExitCode,
		Stdout:     e.Stdout,
		Stderr:     e.Stderr,
		Err:        e,
	}
}

// AsToolFailure converts an *ExecError anywhere in err's chain into a
// ToolFailure of the given kind. Other errors are reported as not converted.
//
// Example:
//
//	_, err := runner.Run(ctx, "objdump", "-d", path)
//	if failure, ok := exec.AsToolFailure(errors.KindObjdump, err); ok {
//	    return failure
//	}
func AsToolFailure(kind errors.Kind, err error) (*errors.ToolFailure, bool) {
	var execErr *ExecError
	if !stderrors.As(err, &execErr) {
		return nil, false
	}
	return errors.FromProcessError(kind, execErr.ProcessFailure()), true
}
