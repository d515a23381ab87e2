package errors

import (
	"fmt"
	"strings"
)

// assemblerMarker prefixes each diagnostic the assembler writes for the
// generated source file. Only the text after it is shown to users.
const assemblerMarker = "asm.s:"

// ProcessFailure is the raw record of a process that exited abnormally.
type ProcessFailure struct {
	// Command is the argument vector that was run. A non-nil empty slice
	// means the command was recorded but had no tokens.
	Command []string

	// CommandLine is used when Command is nil, for callers that only know
	// the command as a single string.
	CommandLine string

	// ReturnCode is the exit code of the process.
	ReturnCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Err is the underlying error reported by the process runner, if any.
	Err error
}

// command normalizes the recorded command to a single space-joined string.
func (p ProcessFailure) command() (string, bool) {
	if p.Command != nil {
		return strings.Join(p.Command, " "), true
	}
	if p.CommandLine != "" {
		return p.CommandLine, true
	}
	return "", false
}

// FromProcessError converts a failed process into a ToolFailure of the given kind.
//
// The message is the trimmed stdout, else the trimmed stderr, else a synthetic
// "<command> returned <code>" ("Process returned <code>" when no command is
// known). FromProcessError never fails, even for an empty command and no output.
//
// For KindAssembly the message is instead rebuilt from the assembler
// transcript; see assemblyMessage.
func FromProcessError(kind Kind, p ProcessFailure) *ToolFailure {
	stdout := trim(p.Stdout)
	stderr := trim(p.Stderr)
	command, hasCommand := p.command()

	message := stdout
	if message == "" {
		message = stderr
	}
	if message == "" {
		if command != "" {
			message = fmt.Sprintf("%s returned %d", command, p.ReturnCode)
		} else {
			message = fmt.Sprintf("Process returned %d", p.ReturnCode)
		}
	}

	opts := []Option{
		WithStdout(stdout),
		WithStderr(stderr),
		WithExitCode(p.ReturnCode),
		WithCause(p.Err),
	}
	if hasCommand {
		opts = append(opts, WithCommand(command))
	}

	e := New(kind, message, opts...)
	if kind == KindAssembly {
		if msg := assemblyMessage(p.Stdout); trim(msg) != "" {
			e.message = msg
		} else {
			e.message = e.RenderMessage()
		}
	}
	return e
}

// assemblyMessage strips everything up to and including the first
// assemblerMarker on each line that has one. Other lines are kept verbatim.
//
// This depends on the assembler's exact diagnostic format; if the marker
// changes, lines pass through unmodified.
func assemblyMessage(stdout string) string {
	lines := splitLines(stdout)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if i := strings.Index(line, assemblerMarker); i >= 0 {
			out = append(out, trim(line[i+len(assemblerMarker):]))
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
