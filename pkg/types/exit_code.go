// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Exit codes returned by the patterns binary.
const (
	// ExitSuccess means the command completed.
	ExitSuccess ExitCode = 0
	// ExitFailure is used for errors without a more specific code.
	ExitFailure ExitCode = 1
	// ExitInvalidInput means a script, block file, variant, lesson name or
	// flag value was rejected before anything ran.
	ExitInvalidInput ExitCode = 2
	// ExitUnavailable means a light script called an operation that does not
	// exist on the light's current type.
	ExitUnavailable ExitCode = 3

	maxExitCode = 255
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status. POSIX truncates it to 0-255.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode cannot be passed to
	// os.Exit unchanged.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-%d)", e.Value, maxExitCode)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for category checks.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// IsValid reports whether c is in the POSIX range.
func (c ExitCode) IsValid() (bool, []error) {
	if c < 0 || c > maxExitCode {
		return false, []error{&InvalidExitCodeError{Value: c}}
	}
	return true, nil
}

// IsSuccess reports whether c is ExitSuccess.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the code in decimal followed by its meaning when known,
// for example "3 (operation unavailable)".
func (c ExitCode) String() string {
	var meaning string
	switch c {
	case ExitSuccess:
		meaning = "success"
	case ExitFailure:
		meaning = "failure"
	case ExitInvalidInput:
		meaning = "invalid input"
	case ExitUnavailable:
		meaning = "operation unavailable"
	default:
		return strconv.Itoa(int(c))
	}
	return strconv.Itoa(int(c)) + " (" + meaning + ")"
}
