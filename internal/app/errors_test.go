package app

import (
	"errors"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "measuring window"},
			expected: "measuring window",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "opening", Target: "/path/file.txt"},
			expected: "opening /path/file.txt",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "opening", Target: "/path/file.txt", Err: errors.New("io error")},
			expected: "opening /path/file.txt: io error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	inner := errors.New("inner error")
	err := NewOperationError("opening", "file.txt", inner)

	if err.Unwrap() != inner {
		t.Error("Unwrap() did not return inner error")
	}
}

func TestOperationError_Unwrap_Nil(t *testing.T) {
	var err *OperationError
	if err.Unwrap() != nil {
		t.Error("expected nil from Unwrap() on nil receiver")
	}
}

func TestOperationError_Is(t *testing.T) {
	sentinel := errors.New("sentinel error")
	err := NewOperationError("opening", "file.txt", sentinel)

	if !errors.Is(err, sentinel) {
		t.Error("expected errors.Is to match wrapped sentinel")
	}

	if !errors.Is(err, err) {
		t.Error("expected errors.Is to match same instance")
	}

	other := errors.New("other error")
	if errors.Is(err, other) {
		t.Error("expected errors.Is to not match different error")
	}
}

func TestOperationError_Is_Nil(t *testing.T) {
	var err *OperationError
	if err.Is(errors.New("any")) {
		t.Error("expected Is() to return false for nil receiver")
	}
}

func TestErrQuitWrapped(t *testing.T) {
	err := NewOperationError("dispatching", "", ErrQuit)

	if !errors.Is(err, ErrQuit) {
		t.Error("expected errors.Is to find ErrQuit through the wrapper")
	}
}
