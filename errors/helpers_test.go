package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{}

func (customError) Error() string { return "custom" }

func TestAsToolFailure(t *testing.T) {
	failure := NewCompilationError("failed")
	wrapped := fmt.Errorf("compile scratch: %w", failure)

	got, ok := AsToolFailure(wrapped)
	require.True(t, ok)
	require.Same(t, failure, got)

	_, ok = AsToolFailure(stderrors.New("plain"))
	require.False(t, ok)

	_, ok = AsToolFailure(nil)
	require.False(t, ok)
}

func TestIsHelpers(t *testing.T) {
	failure := NewSandboxError("killed")
	assertion := Assert(false, "x must be > 0")
	integrity := NewIntegrityError("duplicate key", nil)

	require.True(t, IsToolFailure(failure))
	require.False(t, IsToolFailure(assertion))

	require.True(t, IsInvariantViolation(fmt.Errorf("wrap: %w", assertion)))
	require.False(t, IsInvariantViolation(integrity))

	require.True(t, IsIntegrityViolation(fmt.Errorf("wrap: %w", integrity)))
	require.False(t, IsIntegrityViolation(failure))

	require.True(t, Is(fmt.Errorf("wrap: %w", failure), failure))

	var target *ToolFailure
	require.True(t, As(failure, &target))
}

func TestGetKind(t *testing.T) {
	kind, ok := GetKind(fmt.Errorf("wrap: %w", NewNmError("x")))
	require.True(t, ok)
	require.Equal(t, KindNm, kind)

	_, ok = GetKind(stderrors.New("plain"))
	require.False(t, ok)
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"subprocess", NewSubprocessError("x"), "SubprocessError"},
		{"diff", NewDiffError("x"), "DiffError"},
		{"objdump", NewObjdumpError("x"), "ObjdumpError"},
		{"nm", NewNmError("x"), "NmError"},
		{"compiler", NewCompilationError("x"), "CompilationError"},
		{"sandbox", NewSandboxError("x"), "SandboxError"},
		{"assembly", NewAssemblyError("x"), "AssemblyError"},
		{"wrapped tool failure", fmt.Errorf("wrap: %w", NewDiffError("x")), "DiffError"},
		{"assertion", Assert(false, "x"), "AssertionError"},
		{"integrity", NewIntegrityError("x", nil), "IntegrityError"},
		{"value type", customError{}, "customError"},
		{"pointer type", &customError{}, "customError"},
		{"stdlib", stderrors.New("x"), "errorString"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TypeName(tt.err))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		want       Classification
		recognized bool
		status     int
	}{
		{"tool failure", NewCompilationError("x"), ClassificationClient, true, http.StatusBadRequest},
		{"assertion", Assert(false, "x"), ClassificationServer, true, http.StatusInternalServerError},
		{"integrity", NewIntegrityError("x", nil), ClassificationServer, true, http.StatusInternalServerError},
		{"unrecognized", stderrors.New("x"), "", false, 0},
		{"nil", nil, "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.err)
			require.Equal(t, tt.recognized, ok)
			require.Equal(t, tt.want, got)
			if ok {
				require.Equal(t, tt.status, got.HTTPStatus())
			}
		})
	}
}

func TestAssert(t *testing.T) {
	require.NoError(t, Assert(true, "unused"))
	require.NoError(t, Assertf(true, "unused %d", 1))

	err := Assert(false, "x must be > 0")
	require.EqualError(t, err, "x must be > 0")

	err = Assertf(false, "x must be > %d", 0)
	require.EqualError(t, err, "x must be > 0")

	var assertion *AssertionError
	require.True(t, stderrors.As(err, &assertion))
}

func TestNewIntegrityError(t *testing.T) {
	cause := stderrors.New("UNIQUE constraint failed: scratch.slug")

	err := NewIntegrityError("", cause)
	require.EqualError(t, err, "UNIQUE constraint failed: scratch.slug")
	require.True(t, stderrors.Is(err, cause))

	err = NewIntegrityError("duplicate scratch", cause)
	require.EqualError(t, err, "duplicate scratch")
}
