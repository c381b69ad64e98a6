// SPDX-License-Identifier: MPL-2.0

package light

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// IntensityOff is the only intensity an Off light can report.
	IntensityOff Intensity = 0

	// DefaultIntensity is assigned on every Off -> On transition, in every variant.
	DefaultIntensity Intensity = 10

	// MaxIntensity is the brightest representable level.
	MaxIntensity Intensity = 255

	// VariantNaive is the single-type, runtime-checked light.
	VariantNaive Variant = "naive"
	// VariantMarker is the zero-width Off/On typestate light.
	VariantMarker Variant = "marker"
	// VariantPayload is the sum-type light whose On variant carries the intensity.
	VariantPayload Variant = "payload"
)

const (
	// StateOff is the initial state of every light.
	StateOff State = iota
	// StateOn is the emitting state.
	StateOn
)

// ErrInvalidVariant is returned when a Variant value is not recognized.
var ErrInvalidVariant = errors.New("invalid light variant")

type (
	// Intensity is a light level. uint8 keeps negative and out-of-range levels
	// unrepresentable.
	Intensity uint8

	// State names the two states of the light state machine.
	State int

	// Switch is the capability shared by every light value regardless of state.
	Switch interface {
		IsOn() bool
	}

	// Variant selects one of the light implementations.
	Variant string

	// InvalidVariantError is returned when a Variant value is not recognized.
	// It wraps ErrInvalidVariant for errors.Is() compatibility.
	InvalidVariantError struct {
		Value Variant
	}
)

// String returns the decimal level.
func (i Intensity) String() string {
	return strconv.Itoa(int(i))
}

// String returns "Off" or "On".
func (s State) String() string {
	switch s {
	case StateOff:
		return "Off"
	case StateOn:
		return "On"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Next returns the state reached by a toggle.
func (s State) Next() State {
	if s == StateOn {
		return StateOff
	}
	return StateOn
}

// StateOf reports the state of any light value.
func StateOf(sw Switch) State {
	if sw.IsOn() {
		return StateOn
	}
	return StateOff
}

// Variants returns all known variants in presentation order.
func Variants() []Variant {
	return []Variant{VariantNaive, VariantMarker, VariantPayload}
}

// String returns the variant name.
func (v Variant) String() string { return string(v) }

// IsTypestate reports whether illegal operations are rejected by the type system
// rather than ignored at runtime.
func (v Variant) IsTypestate() bool {
	return v == VariantMarker || v == VariantPayload
}

// TracksIntensity reports whether the variant stores an intensity at all.
func (v Variant) TracksIntensity() bool {
	return v != VariantMarker
}

// IsValid returns whether the Variant is one of the defined variants,
// and a list of validation errors if it is not.
func (v Variant) IsValid() (bool, []error) {
	switch v {
	case VariantNaive, VariantMarker, VariantPayload:
		return true, nil
	default:
		return false, []error{&InvalidVariantError{Value: v}}
	}
}

// ParseVariant converts a user-supplied name into a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if ok, errs := v.IsValid(); !ok {
		return "", errs[0]
	}
	return v, nil
}

// Error implements the error interface.
func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("invalid light variant %q (valid: naive, marker, payload)", e.Value)
}

// Unwrap returns ErrInvalidVariant so callers can use errors.Is for category checks.
func (e *InvalidVariantError) Unwrap() error { return ErrInvalidVariant }
