package api

import (
	stderrors "errors"
	"net/http"
)

// Response is a structured API error response.
// Data is usually a map[string]any payload; only map payloads are tagged
// with the error's kind.
type Response struct {
	Status int
	Data   any
}

// DefaultHandler builds the framework's generic response for err.
// It returns nil when it does not recognize err.
type DefaultHandler func(err error) *Response

var (
	// ErrNotFound reports that the requested resource does not exist.
	ErrNotFound = stderrors.New("not found")

	// ErrPermissionDenied reports that the caller may not perform the action.
	ErrPermissionDenied = stderrors.New("you do not have permission to perform this action")
)

// Error is a request-level failure carrying its own status code.
type Error struct {
	Status int
	Detail string
}

// NewError creates an Error. A zero status defaults to 500.
func NewError(status int, detail string) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	return &Error{Status: status, Detail: detail}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Detail
}

// DefaultExceptionHandler is the generic fallback: it recognizes *Error,
// ErrNotFound and ErrPermissionDenied and returns {"detail": ...} with the
// matching status. Any other error yields nil.
func DefaultExceptionHandler(err error) *Response {
	var apiErr *Error
	switch {
	case err == nil:
		return nil
	case stderrors.As(err, &apiErr):
		return &Response{
			Status: apiErr.Status,
			Data:   map[string]any{"detail": apiErr.Detail},
		}
	case stderrors.Is(err, ErrNotFound):
		return &Response{
			Status: http.StatusNotFound,
			Data:   map[string]any{"detail": "Not found."},
		}
	case stderrors.Is(err, ErrPermissionDenied):
		return &Response{
			Status: http.StatusForbidden,
			Data:   map[string]any{"detail": ErrPermissionDenied.Error()},
		}
	default:
		return nil
	}
}
