package errors

import "strings"

// Option sets optional fields on a ToolFailure during construction.
type Option func(*ToolFailure)

// WithStdout records the captured standard output verbatim.
func WithStdout(stdout string) Option {
	return func(e *ToolFailure) {
		e.stdout = stdout
	}
}

// WithStderr records the captured standard error verbatim.
func WithStderr(stderr string) Option {
	return func(e *ToolFailure) {
		e.stderr = stderr
	}
}

// WithCommand records the command line that was run.
func WithCommand(command string) Option {
	return func(e *ToolFailure) {
		e.command = command
		e.hasCommand = true
	}
}

// WithExitCode records the exit code of the failed process.
func WithExitCode(code int) Option {
	return func(e *ToolFailure) {
		e.exitCode = code
		e.hasExit = true
	}
}

// WithCause attaches the underlying error, reachable through Unwrap.
func WithCause(err error) Option {
	return func(e *ToolFailure) {
		e.cause = err
	}
}

// New creates a ToolFailure of the given kind.
// The message is trimmed and prefixed with the tool name. A blank message
// yields just "<tool> error". New never fails.
//
// Example:
//
//	err := errors.New(errors.KindCompiler, "syntax error",
//	    errors.WithStderr(stderr),
//	    errors.WithCommand("gcc -c x.c"),
//	)
//	// err.Error() == "Compiler error: syntax error"
func New(kind Kind, message string, opts ...Option) *ToolFailure {
	e := &ToolFailure{
		kind:    kind,
		message: renderBase(kind, message),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewSubprocessError creates a failure of an unspecified external process.
func NewSubprocessError(message string, opts ...Option) *ToolFailure {
	return New(KindSubprocess, message, opts...)
}

// NewDiffError creates a diff tool failure.
func NewDiffError(message string, opts ...Option) *ToolFailure {
	return New(KindDiff, message, opts...)
}

// NewObjdumpError creates an objdump failure.
func NewObjdumpError(message string, opts ...Option) *ToolFailure {
	return New(KindObjdump, message, opts...)
}

// NewNmError creates an nm failure.
func NewNmError(message string, opts ...Option) *ToolFailure {
	return New(KindNm, message, opts...)
}

// NewCompilationError creates a compiler failure.
func NewCompilationError(message string, opts ...Option) *ToolFailure {
	return New(KindCompiler, message, opts...)
}

// NewSandboxError creates a sandbox failure.
func NewSandboxError(message string, opts ...Option) *ToolFailure {
	return New(KindSandbox, message, opts...)
}

// NewAssemblyError creates an assembler failure.
func NewAssemblyError(message string, opts ...Option) *ToolFailure {
	return New(KindAssembly, message, opts...)
}

func renderBase(kind Kind, message string) string {
	if base := trim(message); base != "" {
		return kind.ToolName() + " error: " + base
	}
	return kind.ToolName() + " error"
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
