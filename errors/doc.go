// Package errors classifies failures of external tools.
//
// Compilers, assemblers, disassemblers, symbol tools, diff tools and the
// execution sandbox all report failures as a *ToolFailure. A ToolFailure is a
// tagged variant: its Kind fixes the tool name used as the message prefix and
// as the machine-readable code of API responses.
//
// Two framework-level failures complete the taxonomy: AssertionError for a
// violated internal invariant and IntegrityError for a violated storage
// constraint. Everything here is compatible with the standard library
// errors.Is, errors.As and errors.Unwrap.
//
// # Creating failures
//
// Directly, with an explicit message:
//
//	err := errors.NewCompilationError("unexpected token",
//	    errors.WithStderr(stderr),
//	    errors.WithCommand("gcc -c x.c"),
//	)
//	// err.Error() == "Compiler error: unexpected token"
//
// From a failed process:
//
//	err := errors.FromProcessError(errors.KindCompiler, errors.ProcessFailure{
//	    Command:    []string{"gcc", "-c", "x.c"},
//	    ReturnCode: 1,
//	})
//	// err.Error() == "Compiler error: gcc -c x.c returned 1"
//
// # Rendering
//
// RenderMessage picks the text that best describes the failure: the tool's
// stdout transcript, then its stderr, then the synthetic message.
//
// # Assembler output
//
// FromProcessError with KindAssembly keeps only the part of each diagnostic
// after the "asm.s:" marker, so users see "12: error: bad opcode" rather than
// the path of the temporary source file.
package errors
