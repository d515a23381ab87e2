package errors

import "fmt"

// AssertionError reports a failed internal precondition. It signals a defect
// in the service, not a problem with the caller's input.
type AssertionError struct {
	msg string
}

// Error returns the assertion message.
func (e *AssertionError) Error() string {
	return e.msg
}

// Assert returns an *AssertionError carrying message when cond is false,
// and nil otherwise.
//
// Example:
//
//	if err := errors.Assert(n > 0, "x must be > 0"); err != nil {
//	    return err
//	}
func Assert(cond bool, message string) error {
	if cond {
		return nil
	}
	return &AssertionError{msg: message}
}

// Assertf is like Assert with a formatted message.
func Assertf(cond bool, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	return &AssertionError{msg: fmt.Sprintf(format, args...)}
}

// IntegrityError reports that a persistence-layer constraint was violated.
type IntegrityError struct {
	msg   string
	cause error
}

// NewIntegrityError creates an IntegrityError wrapping the driver error.
// If message is empty the cause's text is used.
func NewIntegrityError(message string, cause error) *IntegrityError {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return &IntegrityError{msg: message, cause: cause}
}

// Error returns the violation message.
func (e *IntegrityError) Error() string {
	return e.msg
}

// Unwrap returns the driver error.
func (e *IntegrityError) Unwrap() error {
	return e.cause
}
