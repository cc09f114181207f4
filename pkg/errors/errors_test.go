package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidBeamCount, "beam_count must be >= 1, got %d", 0)

	if err.Code != ErrCodeInvalidBeamCount {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidBeamCount)
	}

	if err.Message != "beam_count must be >= 1, got 0" {
		t.Errorf("Message = %v, want %v", err.Message, "beam_count must be >= 1, got 0")
	}

	expected := "INVALID_BEAM_COUNT: beam_count must be >= 1, got 0"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "write out.dxf")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInfeasibleBranch, "test"),
			code:     ErrCodeInfeasibleBranch,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInfeasibleBranch, "test"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeIO, New(ErrCodeInvalidPrimitive, "inner"), "outer"),
			code:     ErrCodeIO,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidConfig,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidConfig,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeMaskLength, "test"), ErrCodeMaskLength},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidGrid, "rows must be >= 0")); got != "rows must be >= 0" {
		t.Errorf("UserMessage() = %q, want %q", got, "rows must be >= 0")
	}
	wrapped := Wrap(ErrCodeIO, errors.New("disk full"), "write out.dxf")
	if got := UserMessage(wrapped); got != "write out.dxf: disk full" {
		t.Errorf("UserMessage() = %q, want %q", got, "write out.dxf: disk full")
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidConfig, true},
		{ErrCodeInvalidGrid, true},
		{ErrCodeInvalidBeamCount, true},
		{ErrCodeInfeasibleBranch, true},
		{ErrCodeMaskLength, true},
		{ErrCodeDegenerateGeometry, false},
		{ErrCodeIO, false},
		{ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := IsValidation(New(tt.code, "x")); got != tt.want {
				t.Errorf("IsValidation(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
