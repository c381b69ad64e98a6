// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     ExitCode
		wantValid bool
	}{
		{name: "success", value: ExitSuccess, wantValid: true},
		{name: "unavailable", value: ExitUnavailable, wantValid: true},
		{name: "255 is valid", value: 255, wantValid: true},
		{name: "negative is invalid", value: -1, wantValid: false},
		{name: "256 is invalid", value: 256, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.value.IsValid()
			if valid != tt.wantValid {
				t.Fatalf("ExitCode(%d).IsValid() = %v, want %v", tt.value, valid, tt.wantValid)
			}
			if tt.wantValid {
				if len(errs) != 0 {
					t.Errorf("valid code returned errors: %v", errs)
				}
				return
			}
			if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidExitCode) {
				t.Errorf("errors = %v, want one wrapping ErrInvalidExitCode", errs)
			}
			var invalid *InvalidExitCodeError
			if !errors.As(errs[0], &invalid) || invalid.Value != tt.value {
				t.Errorf("error should carry the value %d, got %v", tt.value, errs[0])
			}
		})
	}
}

func TestExitCode_IsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() {
		t.Error("ExitSuccess.IsSuccess() = false")
	}
	for _, c := range []ExitCode{ExitFailure, ExitInvalidInput, ExitUnavailable, 255} {
		if c.IsSuccess() {
			t.Errorf("ExitCode(%d).IsSuccess() = true", c)
		}
	}
}

func TestExitCode_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code ExitCode
		want string
	}{
		{ExitSuccess, "0 (success)"},
		{ExitInvalidInput, "2 (invalid input)"},
		{ExitUnavailable, "3 (operation unavailable)"},
		{42, "42"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ExitCode(%d).String() = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}
