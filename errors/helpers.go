package errors

import (
	stderrors "errors"
	"reflect"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// AsToolFailure returns the first ToolFailure in err's chain.
//
// Example:
//
//	if failure, ok := errors.AsToolFailure(err); ok {
//	    log.Printf("%s failed: %s", failure.ToolName(), failure.RenderMessage())
//	}
func AsToolFailure(err error) (*ToolFailure, bool) {
	var failure *ToolFailure
	if stderrors.As(err, &failure) && failure != nil {
		return failure, true
	}
	return nil, false
}

// IsToolFailure reports whether err's chain contains a ToolFailure.
func IsToolFailure(err error) bool {
	_, ok := AsToolFailure(err)
	return ok
}

// IsInvariantViolation reports whether err's chain contains an AssertionError.
func IsInvariantViolation(err error) bool {
	var assertion *AssertionError
	return stderrors.As(err, &assertion)
}

// IsIntegrityViolation reports whether err's chain contains an IntegrityError.
func IsIntegrityViolation(err error) bool {
	var integrity *IntegrityError
	return stderrors.As(err, &integrity)
}

// GetKind returns the Kind of the first ToolFailure in err's chain.
func GetKind(err error) (Kind, bool) {
	if failure, ok := AsToolFailure(err); ok {
		return failure.Kind(), true
	}
	return KindSubprocess, false
}

// TypeName returns the concrete type name used to tag error responses.
//
// ToolFailures report their Kind's type name ("CompilationError", ...).
// AssertionError and IntegrityError are found anywhere in the chain. Any other
// error reports the name of its own concrete type, with pointers dereferenced.
// Returns "" for a nil error.
func TypeName(err error) string {
	if err == nil {
		return ""
	}
	if failure, ok := AsToolFailure(err); ok {
		return failure.Kind().TypeName()
	}
	var assertion *AssertionError
	if stderrors.As(err, &assertion) {
		return "AssertionError"
	}
	var integrity *IntegrityError
	if stderrors.As(err, &integrity) {
		return "IntegrityError"
	}

	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
