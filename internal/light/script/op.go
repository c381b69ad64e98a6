// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"patterns-cli/internal/light"
)

const (
	// OpToggle flips the light.
	OpToggle OpKind = iota + 1
	// OpSet changes the intensity of an On light.
	OpSet
	// OpGet reads the intensity of an On light.
	OpGet
	// OpStatus renders the light.
	OpStatus
)

// ErrInvalidScript is the sentinel wrapped by every *SyntaxError.
var ErrInvalidScript = errors.New("invalid light script")

type (
	// OpKind identifies a script operation.
	OpKind int

	// Op is a single parsed operation. Level is only meaningful for OpSet.
	// Line is the 1-based source line, or 0 when the op came from arguments.
	Op struct {
		Kind  OpKind
		Level light.Intensity
		Line  uint
	}

	// SyntaxError describes a script that could not be parsed.
	SyntaxError struct {
		Name   string
		Line   uint
		Reason string
	}
)

// String returns the keyword used in scripts.
func (k OpKind) String() string {
	switch k {
	case OpToggle:
		return "toggle"
	case OpSet:
		return "set"
	case OpGet:
		return "get"
	case OpStatus:
		return "status"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// TouchesIntensity reports whether the op reads or writes the intensity.
func (k OpKind) TouchesIntensity() bool {
	return k == OpSet || k == OpGet
}

// String renders the op the way it would be written in a script.
func (o Op) String() string {
	if o.Kind == OpSet {
		return fmt.Sprintf("set %d", o.Level)
	}
	return o.Kind.String()
}

// Toggle returns a toggle op.
func Toggle() Op { return Op{Kind: OpToggle} }

// Set returns a set op for level.
func Set(level light.Intensity) Op { return Op{Kind: OpSet, Level: level} }

// Get returns a get op.
func Get() Op { return Op{Kind: OpGet} }

// Status returns a status op.
func Status() Op { return Op{Kind: OpStatus} }

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	switch {
	case e.Name != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Reason)
	case e.Name != "":
		return fmt.Sprintf("%s: %s", e.Name, e.Reason)
	default:
		return e.Reason
	}
}

// Unwrap returns ErrInvalidScript so callers can use errors.Is for category checks.
func (e *SyntaxError) Unwrap() error { return ErrInvalidScript }

// ParseArgs parses operations given as command-line words, for example
// "toggle set 200 get" or "toggle set=200 get".
func ParseArgs(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for i := 0; i < len(args); {
		op, n, err := parseOp(args[i:])
		if err != nil {
			return nil, &SyntaxError{Name: "args", Reason: err.Error()}
		}
		ops = append(ops, op)
		i += n
	}
	return ops, nil
}

// parseOp decodes the op at the head of words and returns how many words it used.
func parseOp(words []string) (Op, int, error) {
	head := words[0]
	if kw, level, ok := strings.Cut(head, "="); ok {
		if kw != OpSet.String() {
			return Op{}, 0, fmt.Errorf("unexpected %q: only set takes a value", head)
		}
		lvl, err := parseLevel(level)
		if err != nil {
			return Op{}, 0, err
		}
		return Set(lvl), 1, nil
	}

	switch head {
	case "toggle":
		return Toggle(), 1, nil
	case "get":
		return Get(), 1, nil
	case "status":
		return Status(), 1, nil
	case "set":
		if len(words) < 2 {
			return Op{}, 0, errors.New("set requires an intensity")
		}
		lvl, err := parseLevel(words[1])
		if err != nil {
			return Op{}, 0, err
		}
		return Set(lvl), 2, nil
	default:
		return Op{}, 0, fmt.Errorf("unknown operation %q (valid: toggle, set, get, status)", head)
	}
}

func parseLevel(s string) (light.Intensity, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("intensity %q must be an integer between 0 and %d", s, light.MaxIntensity)
	}
	return light.Intensity(n), nil
}
