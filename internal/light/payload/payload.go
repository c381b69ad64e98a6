// SPDX-License-Identifier: MPL-2.0

// Package payload implements the light as a sealed sum type whose On variant
// carries the intensity.
//
// Off has no fields, so an Off light cannot hold an intensity at all. SetIntensity
// and Intensity are declared on On only; calling either on an Off value is a
// compile error. Both variants satisfy State, the capability they share.
package payload

import (
	"fmt"

	"patterns-cli/internal/light"
)

type (
	// State is the closed set of light variants: Off and On. The unexported
	// method keeps other packages from adding variants.
	State interface {
		light.Switch
		fmt.Stringer
		state() light.State
	}

	// Off is a light that is not emitting. It carries no payload.
	Off struct{}

	// On is a light that is emitting at some intensity.
	On struct {
		intensity light.Intensity
	}
)

var (
	_ State = Off{}
	_ State = On{}
	_ State = (*On)(nil)
)

// New returns an Off light.
func New() Off {
	return Off{}
}

// IsOn reports whether s is the On variant.
func IsOn[S State](s S) bool {
	return s.state() == light.StateOn
}

// Toggle turns the light on at light.DefaultIntensity.
func (Off) Toggle() On {
	return On{intensity: light.DefaultIntensity}
}

// IsOn is always false for Off.
func (Off) IsOn() bool { return false }

// String returns "Light is Off".
func (Off) String() string { return "Light is Off" }

func (Off) state() light.State { return light.StateOff }

// Toggle turns the light off, discarding the intensity.
func (On) Toggle() Off {
	return Off{}
}

// IsOn is always true for On.
func (On) IsOn() bool { return true }

// SetIntensity changes the intensity in place.
func (o *On) SetIntensity(level light.Intensity) {
	o.intensity = level
}

// Intensity returns the current level.
func (o On) Intensity() light.Intensity {
	return o.intensity
}

// String returns "Light is On with intensity N".
func (o On) String() string {
	return fmt.Sprintf("Light is On with intensity %d", o.intensity)
}

func (On) state() light.State { return light.StateOn }
