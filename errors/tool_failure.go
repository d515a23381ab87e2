package errors

// ToolFailure reports that a named external tool failed.
//
// A ToolFailure is immutable once constructed. It carries the rendered message,
// the captured output streams and, when known, the command line and exit code
// of the failed process.
type ToolFailure struct {
	kind       Kind
	message    string
	stdout     string
	stderr     string
	command    string
	hasCommand bool
	exitCode   int
	hasExit    bool
	cause      error
}

// Error returns the rendered message, e.g. "Compiler error: syntax error".
func (e *ToolFailure) Error() string {
	return e.message
}

// Kind returns the variant of the failure.
func (e *ToolFailure) Kind() Kind {
	return e.kind
}

// ToolName returns the name of the tool that failed.
func (e *ToolFailure) ToolName() string {
	return e.kind.ToolName()
}

// Message returns the rendered message. It is never blank.
func (e *ToolFailure) Message() string {
	return e.message
}

// Stdout returns the captured standard output, or "" if none was captured.
func (e *ToolFailure) Stdout() string {
	return e.stdout
}

// Stderr returns the captured standard error, or "" if none was captured.
func (e *ToolFailure) Stderr() string {
	return e.stderr
}

// Command returns the command line that was run and whether one was recorded.
func (e *ToolFailure) Command() (string, bool) {
	return e.command, e.hasCommand
}

// ExitCode returns the exit code of the failed process and whether it is known.
func (e *ToolFailure) ExitCode() (int, bool) {
	return e.exitCode, e.hasExit
}

// RenderMessage returns the text that best represents the failure: the
// trimmed stdout transcript, else the trimmed stderr, else Message.
func (e *ToolFailure) RenderMessage() string {
	if text := trim(e.stdout); text != "" {
		return text
	}
	if text := trim(e.stderr); text != "" {
		return text
	}
	return e.message
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *ToolFailure) Unwrap() error {
	return e.cause
}
