// Package exec runs external tools and reports their failures as tool errors.
//
// Command wraps the standard library's os/exec, capturing stdout, stderr and
// their interleaved combination. Tool binds a Runner to one external program
// (compiler, assembler, objdump, nm, diff, sandbox) and converts a failed run
// into an *errors.ToolFailure of the matching Kind, ready for the API layer.
//
// # Basic Usage
//
//	runner := exec.New(
//		exec.WithDir(workdir),
//		exec.WithTimeout(30*time.Second),
//		exec.WithDisableColors(),
//	)
//	gcc := exec.NewTool(runner, errors.KindCompiler, "gcc", "-c")
//
//	if _, err := gcc.Run(ctx, "-O2", "x.c"); err != nil {
//		return err // *errors.ToolFailure, "Compiler error: ..."
//	}
//
// # Error Handling
//
// Command.Run returns an *ExecError carrying the exit code, the command and
// the captured output. AsToolFailure converts one into a ToolFailure:
//
//	_, err := runner.Run(ctx, "nm", path)
//	if failure, ok := exec.AsToolFailure(errors.KindNm, err); ok {
//		return failure
//	}
//
// Failed runs are terminal. Nothing in this package retries.
//
// # Testing
//
// Tool accepts the Runner interface, so tests can substitute a fake that
// returns canned results and *ExecError values.
package exec
