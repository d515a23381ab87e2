package exec

import (
	"context"
	"strings"

	"github.com/google/shlex"

	"github.com/decompme/toolerr/errors"
)

// Tool wraps a Runner for one external tool. It prepends the tool's program
// and fixed arguments to every run and reports failures as a ToolFailure of
// the tool's Kind.
type Tool struct {
	runner Runner
	kind   errors.Kind
	argv   []string
}

// NewTool creates a Tool running argv[0] with the leading arguments argv[1:].
// The runner can be any Runner implementation, including test doubles.
func NewTool(runner Runner, kind errors.Kind, argv ...string) *Tool {
	return &Tool{
		runner: runner,
		kind:   kind,
		argv:   append([]string(nil), argv...),
	}
}

// Kind returns the kind reported for failures of this tool.
func (t *Tool) Kind() errors.Kind {
	return t.kind
}

// Run executes the tool with the given extra arguments.
//
// A failed run returns the Result (when the process started) together with a
// *errors.ToolFailure built from the captured output. Failures are terminal;
// Run never retries.
func (t *Tool) Run(ctx context.Context, args ...string) (*Result, error) {
	full := make([]string, 0, len(t.argv)+len(args))
	full = append(full, t.argv...)
	full = append(full, args...)

	result, err := t.runner.Run(ctx, full...)
	if err == nil {
		return result, nil
	}
	if failure, ok := AsToolFailure(t.kind, err); ok {
		return result, failure
	}
	return result, errors.FromProcessError(t.kind, errors.ProcessFailure{
		Command:    full,
		ReturnCode: -1,
		Err:        err,
	})
}

// RunLine splits line with shell quoting rules and runs the result as extra
// arguments. A line that cannot be split is reported as a ToolFailure.
func (t *Tool) RunLine(ctx context.Context, line string) (*Result, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, errors.New(t.kind, "invalid command line: "+err.Error(),
			errors.WithCommand(strings.Join(append(append([]string(nil), t.argv...), line), " ")),
			errors.WithCause(err),
		)
	}
	return t.Run(ctx, args...)
}
