// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestErrInvalidDstSize(t *testing.T) {
	t.Parallel()

	if ErrInvalidDstSize == nil {
		t.Fatal("ErrInvalidDstSize is nil")
	}

	expectedMsg := "dst size must be multiple of channels"
	if ErrInvalidDstSize.Error() != expectedMsg {
		t.Errorf("ErrInvalidDstSize.Error() = %q, want %q", ErrInvalidDstSize.Error(), expectedMsg)
	}
}

func TestErrInvalidParameter(t *testing.T) {
	t.Parallel()

	expectedMsg := "invalid parameter"
	if ErrInvalidParameter.Error() != expectedMsg {
		t.Errorf("ErrInvalidParameter.Error() = %q, want %q", ErrInvalidParameter.Error(), expectedMsg)
	}
}

func TestParameterError_Is(t *testing.T) {
	t.Parallel()

	var err error = &ParameterError{Field: "sampleRate", Value: 0, Reason: "must be positive"}

	if !errors.Is(err, ErrInvalidParameter) {
		t.Error("errors.Is(ParameterError, ErrInvalidParameter) = false, want true")
	}
	if errors.Is(err, ErrInvalidDstSize) {
		t.Error("errors.Is(ParameterError, ErrInvalidDstSize) = true, want false")
	}

	want := "invalid parameter: sampleRate 0: must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParameterError_Joined(t *testing.T) {
	t.Parallel()

	joined := errors.Join(
		&ParameterError{Field: "sampleRate", Value: 0, Reason: "must be positive"},
		errors.New("additional context"),
	)

	if !errors.Is(joined, ErrInvalidParameter) {
		t.Error("errors.Is() failed for joined ParameterError")
	}

	var pe *ParameterError
	if !errors.As(joined, &pe) {
		t.Fatal("errors.As() failed for joined ParameterError")
	}
	if pe.Field != "sampleRate" {
		t.Errorf("Field = %q, want %q", pe.Field, "sampleRate")
	}
}
