// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"patterns-cli/internal/ext"
	"patterns-cli/pkg/types"
)

func TestShoutCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"shout", "hurry"}, "hurry!\n"},
		{[]string{"shout", "hurry", "up"}, "hurry up!\n"},
		{[]string{"shout", "--spanish", "vamos"}, "¡vamos!\n"},
	}
	for _, tt := range tests {
		stdout, _, err := runCLI(t, defaultsProvider(), tt.args...)
		if err != nil {
			t.Fatalf("%v failed: %v", tt.args, err)
		}
		if stdout != tt.want {
			t.Errorf("%v stdout = %q, want %q", tt.args, stdout, tt.want)
		}
	}
}

func TestFactorialCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"factorial", "0"}, "0! = 1\n"},
		{[]string{"factorial", "5"}, "5! = 120\n"},
		{[]string{"factorial", "20"}, "20! = 2432902008176640000\n"},
		{[]string{"factorial", "--bits", "8", "5"}, "5! = 120\n"},
		{[]string{"factorial", "--bits", "16", "8"}, "8! = 40320\n"},
	}
	for _, tt := range tests {
		stdout, _, err := runCLI(t, defaultsProvider(), tt.args...)
		if err != nil {
			t.Fatalf("%v failed: %v", tt.args, err)
		}
		if stdout != tt.want {
			t.Errorf("%v stdout = %q, want %q", tt.args, stdout, tt.want)
		}
	}
}

func TestFactorialCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		wantIs error
	}{
		{"overflow 8 bits", []string{"factorial", "--bits", "8", "6"}, ext.ErrOverflow},
		{"overflow 64 bits", []string{"factorial", "21"}, ext.ErrOverflow},
		{"out of range", []string{"factorial", "--bits", "8", "300"}, nil},
		{"not a number", []string{"factorial", "many"}, nil},
		{"bad width", []string{"factorial", "--bits", "12", "3"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runCLI(t, defaultsProvider(), tt.args...)
			if got := exitCode(t, err); got != types.ExitInvalidInput {
				t.Errorf("exit code = %d, want %d", got, types.ExitInvalidInput)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(err, %v) = false for %v", tt.wantIs, err)
			}
		})
	}
}
