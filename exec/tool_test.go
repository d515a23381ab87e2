package exec_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decompme/toolerr/errors"
	"github.com/decompme/toolerr/exec"
)

type fakeRunner struct {
	args   []string
	result *exec.Result
	err    error
}

func (f *fakeRunner) Run(_ context.Context, args ...string) (*exec.Result, error) {
	f.args = args
	return f.result, f.err
}

func TestTool_PrependsArgv(t *testing.T) {
	runner := &fakeRunner{result: &exec.Result{Stdout: "ok"}}
	tool := exec.NewTool(runner, errors.KindObjdump, "mips-linux-gnu-objdump", "-drz")

	result, err := tool.Run(context.Background(), "x.o")

	require.NoError(t, err)
	require.Equal(t, "ok", result.Stdout)
	require.Equal(t, []string{"mips-linux-gnu-objdump", "-drz", "x.o"}, runner.args)
	require.Equal(t, errors.KindObjdump, tool.Kind())
}

func TestTool_ConvertsExecError(t *testing.T) {
	result := &exec.Result{Stderr: "x.c:1: error: expected ';'\n", ExitCode: 1}
	runner := &fakeRunner{
		result: result,
		err: &exec.ExecError{
			Command:  []string{"gcc", "-c", "x.c"},
			ExitCode: 1,
			Stderr:   result.Stderr,
		},
	}
	tool := exec.NewTool(runner, errors.KindCompiler, "gcc", "-c")

	got, err := tool.Run(context.Background(), "x.c")

	require.Same(t, result, got)
	failure, ok := errors.AsToolFailure(err)
	require.True(t, ok)
	require.Equal(t, errors.KindCompiler, failure.Kind())
	require.Equal(t, "Compiler error: x.c:1: error: expected ';'", failure.Message())
	require.Equal(t, "x.c:1: error: expected ';'", failure.Stderr())

	command, ok := failure.Command()
	require.True(t, ok)
	require.Equal(t, "gcc -c x.c", command)

	code, ok := failure.ExitCode()
	require.True(t, ok)
	require.Equal(t, 1, code)

	var execErr *exec.ExecError
	require.True(t, stderrors.As(err, &execErr))
}

func TestTool_AssemblyOutput(t *testing.T) {
	runner := &fakeRunner{
		err: &exec.ExecError{
			Command:  []string{"as", "asm.s"},
			ExitCode: 1,
			Stdout:   "Assembler messages:\n/tmp/s/asm.s:7: Error: illegal operands `addiu $v0'\n",
		},
	}
	tool := exec.NewTool(runner, errors.KindAssembly, "as")

	_, err := tool.Run(context.Background(), "asm.s")

	failure, ok := errors.AsToolFailure(err)
	require.True(t, ok)
	require.Equal(t, "Assembler messages:\n7: Error: illegal operands `addiu $v0'", failure.Message())
}

func TestTool_NonExecError(t *testing.T) {
	runner := &fakeRunner{err: context.Canceled}
	tool := exec.NewTool(runner, errors.KindSandbox, "sandbox")

	_, err := tool.Run(context.Background(), "run")

	failure, ok := errors.AsToolFailure(err)
	require.True(t, ok)
	require.Equal(t, "Sandbox error: sandbox run returned -1", failure.Message())
	require.True(t, stderrors.Is(err, context.Canceled))
}

func TestTool_RunLine(t *testing.T) {
	runner := &fakeRunner{result: &exec.Result{}}
	tool := exec.NewTool(runner, errors.KindDiff, "diff")

	_, err := tool.RunLine(context.Background(), `-u "target file.s" current.s`)

	require.NoError(t, err)
	require.Equal(t, []string{"diff", "-u", "target file.s", "current.s"}, runner.args)
}

func TestTool_RunLineInvalid(t *testing.T) {
	runner := &fakeRunner{}
	tool := exec.NewTool(runner, errors.KindDiff, "diff")

	_, err := tool.RunLine(context.Background(), `-u "unterminated`)

	failure, ok := errors.AsToolFailure(err)
	require.True(t, ok)
	require.Equal(t, errors.KindDiff, failure.Kind())
	require.Nil(t, runner.args)
}

func TestTool_RealProcess(t *testing.T) {
	tool := exec.NewTool(exec.New(), errors.KindNm, "false")

	_, err := tool.Run(context.Background())

	failure, ok := errors.AsToolFailure(err)
	require.True(t, ok)
	require.Equal(t, "nm error: false returned 1", failure.Message())
}

func TestAsToolFailure_NotExecError(t *testing.T) {
	_, ok := exec.AsToolFailure(errors.KindCompiler, stderrors.New("plain"))
	require.False(t, ok)
}
